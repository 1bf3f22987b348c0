// Package images stores one reference image per article. Images are named by
// a sanitized article token so a new upload replaces the previous one.
package images

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"prodbook/internal/fileutil"
	"prodbook/internal/textutil"
)

// extensions lists accepted image file extensions in lookup order.
var extensions = []string{".jpg", ".jpeg", ".png"}

// ErrNoImage indicates no stored image exists for the article.
var ErrNoImage = errors.New("no image for article")

// Attach copies the source image into dir as the article's reference image,
// keeping the source extension and replacing any prior image for that
// article. Returns the destination path.
func Attach(dir, article, sourcePath string) (string, error) {
	article = strings.TrimSpace(article)
	if article == "" {
		return "", errors.New("article is required to name the image")
	}

	ext := strings.ToLower(filepath.Ext(sourcePath))
	if !allowed(ext) {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create images directory: %w", err)
	}

	token := textutil.SanitizeToken(article)
	if err := removeExisting(dir, token); err != nil {
		return "", err
	}

	dst := filepath.Join(dir, token+ext)
	if err := fileutil.CopyFile(sourcePath, dst); err != nil {
		return "", fmt.Errorf("copy image: %w", err)
	}
	return dst, nil
}

// PathFor resolves the stored image for an article, or ErrNoImage.
func PathFor(dir, article string) (string, error) {
	token := textutil.SanitizeToken(article)
	for _, ext := range extensions {
		candidate := filepath.Join(dir, token+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoImage, article)
}

func allowed(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func removeExisting(dir, token string) error {
	for _, ext := range extensions {
		candidate := filepath.Join(dir, token+ext)
		if err := os.Remove(candidate); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove previous image: %w", err)
		}
	}
	return nil
}
