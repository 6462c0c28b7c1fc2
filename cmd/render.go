package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"token-bridge/core/palette"
	"token-bridge/core/reconcile"
	"token-bridge/core/tokens"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Status colors
var (
	syncedColor   = lipgloss.Color("#10B981")
	driftColor    = lipgloss.Color("#F59E0B")
	missingColor  = lipgloss.Color("#EF4444")
	newTokenColor = lipgloss.Color("#3B82F6")
)

var statusStyles = map[reconcile.Status]lipgloss.Style{
	reconcile.StatusSynced:       lipgloss.NewStyle().Foreground(syncedColor),
	reconcile.StatusNeedsSync:    lipgloss.NewStyle().Foreground(driftColor).Bold(true),
	reconcile.StatusVariableOnly: lipgloss.NewStyle().Foreground(missingColor),
	reconcile.StatusTokenOnly:    lipgloss.NewStyle().Foreground(newTokenColor),
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// swatch renders a colored block followed by the hex value.
func swatch(hex string) string {
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
	return block + " " + hex
}

func renderPaletteTable(w io.Writer, p palette.Palette) {
	t := newTable(w)
	t.SetTitle(fmt.Sprintf("%s (%s)", p.Seed, p.Harmony))

	scales := p.Scales()
	header := table.Row{"step"}
	for _, s := range scales {
		header = append(header, s.Name)
	}
	t.AppendHeader(header)

	for _, step := range palette.Steps {
		row := table.Row{step.String()}
		for _, s := range scales {
			row = append(row, swatch(s.Scale[step]))
		}
		t.AppendRow(row)
	}

	t.AppendSeparator()
	for _, c := range p.Semantic() {
		t.AppendRow(table.Row{c.Name, swatch(c.Color)})
	}
	t.Render()
}

func renderTokensTable(w io.Writer, toks []tokens.Token) {
	if len(toks) == 0 {
		_, _ = fmt.Fprintln(w, "(0 tokens)")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"path", "type", "value"})
	for _, tok := range toks {
		value := tokens.FormatValue(tok.Kind, tok.Value)
		if tok.Kind == tokens.KindColor {
			if hex, ok := tok.Value.(string); ok {
				if _, err := palette.ParseHex(hex); err == nil {
					value = swatch(hex)
				}
			}
		}
		t.AppendRow(table.Row{tok.Path, string(tok.Kind), value})
	}
	t.Render()

	summary := tokens.Summarize(toks)
	_, _ = fmt.Fprintf(w, "(%d tokens in %d groups)\n", summary.Total, len(summary.Groups))
}

func renderCompareTable(w io.Writer, result reconcile.Result) {
	t := newTable(w)
	t.SetTitle("mode: " + result.Mode)
	t.AppendHeader(table.Row{"key", "collection", "status", "variable", "token"})
	for _, item := range result.Items {
		status := statusStyles[item.Status].Render(string(item.Status))
		t.AppendRow(table.Row{
			item.MatchKey,
			item.Collection,
			status,
			item.DisplayValues.Variable,
			item.DisplayValues.Token,
		})
	}
	t.AppendFooter(table.Row{"total", result.Summary.Total, "", "", ""})
	t.Render()

	s := result.Summary
	_, _ = fmt.Fprintf(w, "synced %d · needs sync %d · variable only %d · token only %d\n",
		s.Synced, s.NeedsSync, s.VariableOnly, s.TokenOnly)
	if len(result.Duplicates) > 0 {
		_, _ = fmt.Fprintf(w, "duplicate keys: %v\n", result.Duplicates)
	}
}
