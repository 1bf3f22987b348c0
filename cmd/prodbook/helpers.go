package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"prodbook/internal/dateparse"
	"prodbook/internal/ledger"
)

// entryFlags carries the per-field flags shared by add and edit.
type entryFlags struct {
	article   string
	card      string
	color     string
	size      string
	qty       string
	component string
	print     string
	date      string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.article, "article", "", "Article number")
	cmd.Flags().StringVar(&f.card, "card", "", "Card reference")
	cmd.Flags().StringVar(&f.color, "color", "", "Color")
	cmd.Flags().StringVar(&f.size, "size", "", "Size")
	cmd.Flags().StringVar(&f.qty, "qty", "", "Quantity (free text)")
	cmd.Flags().StringVar(&f.component, "component", "", "Component description")
	cmd.Flags().StringVar(&f.print, "print", "", "Print flag (Yes or No)")
	cmd.Flags().StringVar(&f.date, "date", "", "Entry date (YYYY-MM-DD, defaults to today)")
}

// apply overlays the flags the user actually set onto base. Flags left unset
// keep the base value, which lets edit touch a single field.
func (f *entryFlags) apply(cmd *cobra.Command, base ledger.Entry) (ledger.Entry, error) {
	set := func(name, value string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst = strings.TrimSpace(value)
		}
	}
	set("article", f.article, &base.Article)
	set("card", f.card, &base.Card)
	set("color", f.color, &base.Color)
	set("size", f.size, &base.Size)
	set("qty", f.qty, &base.Qty)
	set("component", f.component, &base.Component)

	if cmd.Flags().Changed("print") {
		value, err := normalizePrintFlag(f.print)
		if err != nil {
			return base, err
		}
		base.PrintOpt = value
	}
	if cmd.Flags().Changed("date") {
		date := strings.TrimSpace(f.date)
		if !dateparse.IsCanonical(date) {
			return base, fmt.Errorf("invalid date %q, use YYYY-MM-DD", f.date)
		}
		base.Date = date
	}

	if base.Article == "" {
		return base, fmt.Errorf("article is required")
	}
	return base, nil
}

func normalizePrintFlag(raw string) (string, error) {
	value := cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(raw)))
	if value != ledger.PrintYes && value != ledger.PrintNo {
		return "", fmt.Errorf("invalid print value %q, use Yes or No", raw)
	}
	return value, nil
}

// filterFlags carries the shared search criteria for list and export.
type filterFlags struct {
	article string
	card    string
	print   string
	from    string
	to      string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.article, "article", "", "Match entries whose article contains this text")
	cmd.Flags().StringVar(&f.card, "card", "", "Match entries whose card contains this text")
	cmd.Flags().StringVar(&f.print, "print", "", "Filter by print flag (Yes, No, or All)")
	cmd.Flags().StringVar(&f.from, "from", "", "Earliest entry date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&f.to, "to", "", "Latest entry date (YYYY-MM-DD, inclusive)")
}

// criteria sanitizes the filter input, reporting dropped bounds to the user
// without failing the command.
func (f *filterFlags) criteria(out io.Writer) ledger.Criteria {
	criteria, warnings := ledger.Criteria{
		Article:   f.article,
		Card:      f.card,
		PrintOpt:  f.print,
		StartDate: f.from,
		EndDate:   f.to,
	}.Sanitize()
	for _, warning := range warnings {
		printWarning(out, warning)
	}
	return criteria
}

func printWarning(out io.Writer, msg string) {
	if shouldColorize(out) {
		fmt.Fprintln(out, text.FgYellow.Sprint(msg))
		return
	}
	fmt.Fprintln(out, msg)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func parseEntryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid entry id %q", arg)
	}
	return id, nil
}

var entryTableHeaders = []string{"ID", "Article", "Card", "Color", "Size", "Qty", "Component", "Print", "Date"}

var entryTableAligns = []columnAlignment{
	alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft,
}

func entryTableRows(entries []ledger.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Article,
			e.Card,
			e.Color,
			e.Size,
			e.Qty,
			e.Component,
			e.PrintOpt,
			e.Date,
		})
	}
	return rows
}

func todayDate() string {
	return time.Now().Format(dateparse.Layout)
}
