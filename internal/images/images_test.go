package images_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"prodbook/internal/images"
)

func writeSource(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("image-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAttachAndResolve(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, "photo.JPG")

	dst, err := images.Attach(dir, "ART-1042", src)
	if err != nil {
		t.Fatalf("Attach returned error: %v", err)
	}
	if filepath.Base(dst) != "art-1042.jpg" {
		t.Fatalf("unexpected destination name: %q", filepath.Base(dst))
	}

	resolved, err := images.PathFor(dir, "ART-1042")
	if err != nil {
		t.Fatalf("PathFor returned error: %v", err)
	}
	if resolved != dst {
		t.Fatalf("PathFor = %q, want %q", resolved, dst)
	}
}

func TestAttachReplacesPreviousImage(t *testing.T) {
	dir := t.TempDir()

	if _, err := images.Attach(dir, "ART-7", writeSource(t, "old.png")); err != nil {
		t.Fatalf("first Attach returned error: %v", err)
	}
	dst, err := images.Attach(dir, "ART-7", writeSource(t, "new.jpg"))
	if err != nil {
		t.Fatalf("second Attach returned error: %v", err)
	}

	resolved, err := images.PathFor(dir, "ART-7")
	if err != nil {
		t.Fatalf("PathFor returned error: %v", err)
	}
	if resolved != dst {
		t.Fatalf("expected the png to be replaced, resolved %q", resolved)
	}
	if _, err := os.Stat(filepath.Join(dir, "art-7.png")); !os.IsNotExist(err) {
		t.Fatal("expected previous image to be removed")
	}
}

func TestAttachRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	if _, err := images.Attach(dir, "  ", writeSource(t, "a.jpg")); err == nil {
		t.Fatal("expected error for blank article")
	}
	if _, err := images.Attach(dir, "ART-1", writeSource(t, "a.gif")); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestPathForMissing(t *testing.T) {
	if _, err := images.PathFor(t.TempDir(), "ART-404"); !errors.Is(err, images.ErrNoImage) {
		t.Fatalf("expected ErrNoImage, got %v", err)
	}
}
