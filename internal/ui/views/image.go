package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixels/internal/domain"
)

// ImageRenderer handles rendering of result rows and the detail view
type ImageRenderer struct {
	styles *Styles
}

// NewImageRenderer creates a new image renderer
func NewImageRenderer(styles *Styles) *ImageRenderer {
	return &ImageRenderer{styles: styles}
}

// RenderRow renders one result row
func (r *ImageRenderer) RenderRow(img domain.Image, isSelected bool, width int) string {
	marker := "  "
	if isSelected {
		marker = r.styles.Highlight.Render("▸ ")
	}

	orientation := "▭"
	if img.IsPortrait() {
		orientation = "▯"
	}

	stats := r.styles.Stat.Render(fmt.Sprintf("%d×%d  ♥ %s  ⬇ %s",
		img.ImageWidth, img.ImageHeight, compact(img.Likes), compact(img.Downloads)))
	user := r.styles.Dim.Render("by " + img.User)

	tagsWidth := width - lipgloss.Width(stats) - lipgloss.Width(user) - 12
	if tagsWidth < 10 {
		tagsWidth = 10
	}
	tags := r.styles.Tags.Render(truncate(img.Tags, tagsWidth))

	line := fmt.Sprintf("%s%s %s  %s  %s", marker, orientation, tags, stats, user)
	if isSelected {
		line = r.styles.SelectionBg.Render(line)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// RenderDetail renders the full-screen view of one image: a frame scaled to
// the terminal with the image's aspect ratio, then its metadata.
func (r *ImageRenderer) RenderDetail(img domain.Image, width, height int, status string) string {
	var b strings.Builder

	frameW, frameH := FrameSize(img, width-8, height-12)
	label := fmt.Sprintf("%s\n%d × %d", domain.BaseName(img.WebformatURL), img.ImageWidth, img.ImageHeight)
	frame := r.styles.Frame.
		Width(frameW).
		Height(frameH).
		Align(lipgloss.Center, lipgloss.Center).
		Render(r.styles.Dim.Render(label))
	b.WriteString(frame)
	b.WriteString("\n\n")

	b.WriteString(r.styles.Tags.Render(img.Tags))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n",
		r.styles.Highlight.Render(img.User),
		r.styles.Stat.Render(fmt.Sprintf("%s views · %s downloads · %s likes",
			compact(img.Views), compact(img.Downloads), compact(img.Likes)))))
	if img.PageURL != "" {
		b.WriteString(r.styles.Dim.Render(img.PageURL))
		b.WriteString("\n")
	}
	if status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}
	return b.String()
}

// FrameSize scales an image to fit maxW×maxH terminal cells. Cells are
// roughly twice as tall as wide, so rows count double.
func FrameSize(img domain.Image, maxW, maxH int) (int, int) {
	if maxW < 4 {
		maxW = 4
	}
	if maxH < 2 {
		maxH = 2
	}
	ratio := img.AspectRatio()
	w := maxW
	h := int(float64(w)/ratio/2 + 0.5)
	if h > maxH {
		h = maxH
		w = int(float64(h)*ratio*2 + 0.5)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// compact formats counts like 1.2k or 3.4M
func compact(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
