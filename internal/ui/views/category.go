package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CategoryRenderer handles rendering of the category bar and filter chips
type CategoryRenderer struct {
	styles *Styles
}

// NewCategoryRenderer creates a new category renderer
func NewCategoryRenderer(styles *Styles) *CategoryRenderer {
	return &CategoryRenderer{styles: styles}
}

// RenderBar renders the categories as one line, scrolled so the cursor stays visible
func (r *CategoryRenderer) RenderBar(categories []string, cursor int, active string, width int) string {
	if len(categories) == 0 {
		return ""
	}
	items := make([]string, len(categories))
	for i, name := range categories {
		switch {
		case name == active:
			items[i] = r.styles.CategoryActive.Render(name)
		case i == cursor:
			items[i] = r.styles.CategoryCursor.Render(name)
		default:
			items[i] = r.styles.Category.Render(name)
		}
	}

	// Slide a window over the items until the cursor fits
	start := 0
	for start < cursor {
		if lipgloss.Width(strings.Join(items[start:cursor+1], "")) <= width-4 {
			break
		}
		start++
	}
	end := start
	used := 0
	for end < len(items) {
		w := lipgloss.Width(items[end])
		if used+w > width-4 && end > start {
			break
		}
		used += w
		end++
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(r.styles.Scroll.Render("‹ "))
	}
	b.WriteString(strings.Join(items[start:end], ""))
	if end < len(items) {
		b.WriteString(r.styles.Scroll.Render(" ›"))
	}
	return b.String()
}

// RenderChips renders the active filters as numbered chips
func (r *CategoryRenderer) RenderChips(keys []string, values map[string]string) string {
	if len(keys) == 0 {
		return ""
	}
	chips := make([]string, len(keys))
	for i, k := range keys {
		chips[i] = r.styles.ChipIndex.Render(fmt.Sprintf("%d", i+1)) + " " + r.styles.Chip.Render(fmt.Sprintf("%s: %s ✕", k, values[k]))
	}
	return strings.Join(chips, "  ")
}
