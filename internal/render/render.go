// Package render formats lookup results as plain text.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/fwew/internal/affix"
	"github.com/verte-zerg/fwew/internal/dictionary"
)

const (
	terminalWidthBackup = 80
	minWidth            = 20
	indent              = "    "
)

// Options selects what an entry shows.
type Options struct {
	Lang      string
	IPA       bool
	Syllables bool
	Width     int
}

// TerminalWidth returns the width of stdout, or a fallback when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// Entry renders one numbered result: a header line with the root and its
// gloss, followed by one line per recorded affix kind.
func Entry(w dictionary.Word, n int, opts Options) []string {
	var head strings.Builder
	fmt.Fprintf(&head, "[%d] %s", n, w.Data.Navi)
	if opts.IPA && w.Data.IPA != "" {
		fmt.Fprintf(&head, " [%s]", w.Data.IPA)
	}
	if opts.Syllables {
		fmt.Fprintf(&head, " (%d)", w.SyllableCount())
	}
	if w.Data.PartOfSpeech != "" {
		fmt.Fprintf(&head, " %s", w.Data.PartOfSpeech)
	}
	if gloss := w.Gloss(opts.Lang); gloss != "" {
		fmt.Fprintf(&head, " %s", gloss)
	}

	lines := Wrap(head.String(), opts.Width, indent)
	for _, row := range AffixRows(w.Data.Affixes) {
		lines = append(lines, indent+row)
	}
	return lines
}

// AffixRows lists the non-empty affix kinds, one "Kind: a, b" row each.
func AffixRows(a dictionary.Affixes) []string {
	kinds := []struct {
		name string
		list []string
	}{
		{"Prefixes", a.Prefix},
		{"Infixes", a.Infix},
		{"Suffixes", a.Suffix},
		{"Lenition", a.Lenition},
	}
	var rows []string
	for _, k := range kinds {
		if len(k.list) > 0 {
			rows = append(rows, k.name+": "+strings.Join(k.list, ", "))
		}
	}
	return rows
}

// Trace renders the stages of a reconstruction, one per line.
func Trace(steps []affix.Step) []string {
	lines := make([]string, 0, len(steps))
	for _, s := range steps {
		lines = append(lines, fmt.Sprintf("%d %-6s %s", s.Pass, s.Stage, s.Attempt))
	}
	return lines
}

// Results writes the results of one query. No match is reported, not returned as an error.
func Results(out io.Writer, query string, words []dictionary.Word, opts Options, explain func(dictionary.Word) []affix.Step) error {
	if _, err := fmt.Fprintf(out, "%s:\n", query); err != nil {
		return err
	}
	if len(words) == 0 {
		_, err := fmt.Fprintf(out, "%sno results\n\n", indent)
		return err
	}
	for i, w := range words {
		lines := Entry(w, i+1, opts)
		if explain != nil && !w.Data.Affixes.Empty() {
			for _, line := range Trace(explain(w)) {
				lines = append(lines, indent+indent+line)
			}
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(out)
	return err
}

// LenitionTable writes the lenition rules, one "from → to" per line.
func LenitionTable(out io.Writer) error {
	for _, l := range affix.LenitionTable() {
		from := runewidth.FillRight(l.From, 2)
		if _, err := fmt.Fprintf(out, "%s → %s\n", from, l.To); err != nil {
			return err
		}
	}
	return nil
}

// Wrap breaks s at spaces so no line exceeds width columns. Continuation
// lines start with hang. Words wider than a line are kept whole.
func Wrap(s string, width int, hang string) []string {
	if width <= 0 {
		return []string{s}
	}
	width = max(width, minWidth)
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if runewidth.StringWidth(line)+1+runewidth.StringWidth(word) > width {
			lines = append(lines, line)
			line = hang + word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
