// Package ui draws the HUD panel and the key help overlay on top of the
// rendered frame.
package ui

import (
	"fmt"
	"strings"

	"tileplane/internal/core"
)

// Row is one line of the HUD panel.
type Row struct {
	Text   string
	Header bool

	// Key is set for boolean parameters; clicking the row toggles it.
	Key   string
	Value bool
}

// Rows lays out a parameter snapshot as panel lines, starting with title.
func Rows(title string, snap core.ParameterSnapshot) []Row {
	rows := []Row{{Text: title, Header: true}}
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			continue
		}
		rows = append(rows, Row{Text: g.Name, Header: true})
		for _, p := range g.Params {
			if p.Type == core.ParamTypeBool {
				on := p.Value == "true"
				mark := " "
				if on {
					mark = "x"
				}
				rows = append(rows, Row{Text: fmt.Sprintf("[%s] %s", mark, p.Label), Key: p.Key, Value: on})
				continue
			}
			rows = append(rows, Row{Text: fmt.Sprintf("%s: %s", p.Label, p.Value)})
		}
	}
	return rows
}

// Title builds the panel heading for an app name.
func Title(name string) string {
	if name == "" {
		return "Parameters"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// RowAt returns the index of the row under panel-local y, or -1.
func RowAt(rows []Row, y int) int {
	if y < panelPadding {
		return -1
	}
	i := (y - panelPadding) / lineHeight
	if i >= len(rows) {
		return -1
	}
	return i
}

// PanelSize returns the pixel size of a panel holding rows.
func PanelSize(rows []Row) (int, int) {
	w := 0
	for _, r := range rows {
		if n := len(r.Text) * glyphWidth; n > w {
			w = n
		}
	}
	return w + 2*panelPadding, len(rows)*lineHeight + 2*panelPadding
}

const (
	panelPadding   = 8
	lineHeight     = 16
	glyphWidth     = 7
	labelBaseline  = 12
	helpLineHeight = 18
)

// HelpText lists the key bindings shown by the overlay.
const HelpText = "drag/scroll pan  E edges  P points  B bounds  H hud  Home reset  F1 help  Q quit"
