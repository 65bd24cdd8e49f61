package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/git-popup-control/internal/list"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	active := m.activeController()
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.tabHeader(), raw: true})

	switch active.Mode() {
	case list.ModeInput:
		lines = append(lines, m.inputLines(active)...)
	case list.ModeConfirmDelete:
		lines = append(lines, m.confirmLines(active)...)
	}

	lines = append(lines, m.itemLines(active)...)

	if active.State().Busy() {
		lines = append(lines, styledLine{text: fmt.Sprintf("(%s…)", active.State().Loading()), style: styles.Loading})
	}

	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText(active), style: styles.Footer})
	}

	// Reserve 2 rows for the bottom bar (error/status + filter line).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = append(lines, m.bottomBar(active)...)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) tabHeader() string {
	parts := make([]string, 0, len(m.controllers))
	for i, c := range m.controllers {
		label := c.View()
		if n := c.State().Len(); n > 0 {
			label = fmt.Sprintf("%s (%d)", label, n)
		}
		style := styles.Tab
		if i == m.active {
			style = styles.ActiveTab
		}
		if style != nil {
			label = style.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func (m *Model) inputLines(c *list.Controller) []styledLine {
	input := c.Input()
	if input == nil {
		return nil
	}
	lines := []styledLine{
		{text: input.Title() + ":", style: styles.InputTitle},
		{text: input.View(), raw: true},
	}
	if input.Err() != "" {
		lines = append(lines, styledLine{text: input.Err(), style: styles.InputError})
	}
	lines = append(lines, styledLine{})
	return lines
}

func (m *Model) confirmLines(c *list.Controller) []styledLine {
	keys := c.State().StagedKeys()
	banner := fmt.Sprintf(" delete %d staged item(s)? y/n ", len(keys))
	lines := []styledLine{{text: banner, style: styles.Banner}}
	for _, key := range keys {
		lines = append(lines, styledLine{text: "  " + key, style: styles.StagedItem})
	}
	lines = append(lines, styledLine{})
	return lines
}

func (m *Model) itemLines(c *list.Controller) []styledLine {
	state := c.State()
	items := state.Items()
	if len(items) == 0 {
		msg := fmt.Sprintf("(no %s)", c.View())
		if state.Filter() != "" {
			msg = fmt.Sprintf("No matches for %q", state.Filter())
		}
		if state.Loading() == list.OpFetch {
			msg = ""
		}
		if msg == "" {
			return nil
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}

	start := 0
	visible := items
	cursor := state.Cursor()
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(items) > maxItems {
		start = cursor - maxItems + 1
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(items) {
			start = len(items) - maxItems
		}
		visible = items[start : start+maxItems]
	}

	lines := make([]styledLine, 0, len(visible))
	for i, w := range visible {
		idx := start + i
		lines = append(lines, buildItemLine(w, idx == cursor))
	}
	return lines
}

// buildItemLine renders one row: a two-cell indicator column, a staged
// marker, then the pre-aligned item label.
func buildItemLine(w list.Wrapper, selected bool) styledLine {
	indicator := "  "
	indicatorStyle := styles.ItemIndicator
	style := styles.Item
	if selected {
		indicator = "> "
		indicatorStyle = styles.SelectedItemIndicator
		style = styles.SelectedItem
	}
	marker := "  "
	if w.Staged {
		marker = "✗ "
		if !selected {
			style = styles.StagedItem
		}
	}
	return styledLine{
		text:          indicator + marker + w.Item.Title(),
		style:         style,
		prefixStyle:   indicatorStyle,
		highlightFrom: len([]rune(indicator)),
	}
}

func footerText(c *list.Controller) string {
	hints := list.FooterHints(c.Mode(), c.State().Busy(), c.Bindings())
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = h.Key + " " + h.Label
	}
	return strings.Join(parts, "  ")
}

func (m *Model) bottomBar(c *list.Controller) []styledLine {
	var statusLine styledLine
	switch {
	case c.ErrMsg() != "":
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", c.ErrMsg()), style: styles.Error}
	case m.backendLastErr != "":
		statusLine = styledLine{text: fmt.Sprintf("Watcher: %s", m.backendLastErr), style: styles.Error}
	case c.InfoMsg() != "":
		statusLine = styledLine{text: c.InfoMsg(), style: styles.Info}
	}
	filterLine := styledLine{}
	if f := c.State().Filter(); f != "" {
		filterLine = styledLine{text: fmt.Sprintf("filter: %s (esc clears)", f), style: styles.Filter}
	}
	return []styledLine{statusLine, filterLine}
}

// maxVisibleItems returns how many item rows fit the current height.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // tab header + bottom bar
	if m.showFooter {
		used += 2
	}
	active := m.activeController()
	switch active.Mode() {
	case list.ModeInput:
		used += 3
	case list.ModeConfirmDelete:
		used += 2 + len(active.State().StagedKeys())
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
