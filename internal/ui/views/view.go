package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixels/internal/domain"
)

// chromeHeight is every home screen line that is not a result row
const chromeHeight = 13

// ListHeight returns how many result rows fit in a terminal of the given height
func ListHeight(termHeight int) int {
	h := termHeight - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Mode   string // "welcome", "normal", "search", "filters", "detail"

	Images         []domain.Image
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	SearchInput   string // rendered search input
	SearchFocused bool

	Categories     []string
	CategoryCursor int
	ActiveCategory string

	FilterKeys    []string
	Filters       map[string]string
	Pending       map[string]string
	FilterSection int
	FilterOption  int

	Detail      *domain.Image
	Alert       string
	Downloading bool
	Sharing     bool

	Loading       bool
	Spinner       string
	TotalHits     int
	Page          int
	LastError     string
	StatusMessage string

	ShowHelp    bool
	HelpContent string
	KeyHelp     string // rendered footer bindings
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	imageRender *ImageRenderer
	catRender   *CategoryRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		imageRender: NewImageRenderer(styles),
		catRender:   NewCategoryRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var out string
	switch state.Mode {
	case "welcome":
		out = r.renderWelcome(state)
	case "detail":
		out = r.renderDetail(state)
	default:
		out = r.renderHome(state)
	}

	if state.Mode == "filters" {
		out = r.popupRender.RenderPopupOverlay(out, r.renderFilters(state), state.Height, state.Width, r.styles.Modal)
	}
	if state.ShowHelp && state.HelpContent != "" {
		out = r.popupRender.RenderPopupOverlay(out, state.HelpContent, state.Height, state.Width, r.styles.Modal)
	}
	return out
}

func (r *Renderer) renderWelcome(state ViewState) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		r.styles.Title.Render("Pixels"),
		"",
		r.styles.Tagline.Render("every pixel tells a story"),
		"",
		r.styles.Dim.Render("free stock photos, illustrations and vectors"),
		"",
		"",
		state.KeyHelp,
	)
	return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, body)
}

func (r *Renderer) renderHome(state ViewState) string {
	content := &strings.Builder{}
	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}
	innerWidth := width - 4 // Account for main container padding

	// Title with loading indicator
	logo := r.styles.Title.Render("pixels")
	right := ""
	if state.Loading {
		right = r.styles.StatusLoading.Render(state.Spinner + " Loading")
	}
	if pad := innerWidth - lipgloss.Width(logo) - lipgloss.Width(right); pad > 0 && right != "" {
		content.WriteString(logo + strings.Repeat(" ", pad) + right)
	} else {
		content.WriteString(strings.TrimSpace(logo + "  " + right))
	}
	content.WriteString("\n")

	// Search bar
	barStyle := r.styles.SearchBar
	if state.SearchFocused {
		barStyle = r.styles.SearchFocused
	}
	content.WriteString(barStyle.Width(innerWidth - 4).Render("⌕ " + state.SearchInput))
	content.WriteString("\n")

	// Categories and chips
	content.WriteString(r.catRender.RenderBar(state.Categories, state.CategoryCursor, state.ActiveCategory, innerWidth))
	content.WriteString("\n")
	content.WriteString(r.catRender.RenderChips(state.FilterKeys, state.Filters))
	content.WriteString("\n\n")

	// Results
	content.WriteString(r.renderList(state, innerWidth))
	content.WriteString("\n\n")

	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")
	content.WriteString(state.KeyHelp)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderList renders the visible window of result rows with scroll indicators
func (r *Renderer) renderList(state ViewState, width int) string {
	height := state.ViewportHeight
	if height < 1 {
		height = 1
	}
	if len(state.Images) == 0 {
		msg := "No images found."
		if state.Loading {
			msg = "Looking for images..."
		}
		lines := []string{r.styles.Dim.Render(msg)}
		for len(lines) < height {
			lines = append(lines, "")
		}
		return strings.Join(lines, "\n")
	}

	end := state.ViewportOffset + height
	if end > len(state.Images) {
		end = len(state.Images)
	}
	lines := make([]string, 0, height)
	for i := state.ViewportOffset; i < end; i++ {
		lines = append(lines, r.imageRender.RenderRow(state.Images[i], i == state.SelectedIndex, width))
	}
	if state.ViewportOffset > 0 && len(lines) > 0 {
		lines[0] = r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above", state.ViewportOffset))
	}
	if end < len(state.Images) && len(lines) > 1 {
		lines[len(lines)-1] = r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below", len(state.Images)-end+1))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderStatus renders total hits, page, loading and the last error
func (r *Renderer) renderStatus(state ViewState) string {
	parts := []string{
		fmt.Sprintf("%d results", state.TotalHits),
		fmt.Sprintf("page %d", state.Page),
		fmt.Sprintf("%d loaded", len(state.Images)),
	}
	line := r.styles.Status.Render(strings.Join(parts, " · "))
	if state.Loading {
		line += r.styles.StatusLoading.Render(" · loading…")
	}
	if state.LastError != "" {
		line += "  " + r.styles.StatusError.Render("error: "+state.LastError)
	}
	if state.StatusMessage != "" {
		line += "  " + r.styles.StatusSuccess.Render(state.StatusMessage)
	}
	return line
}

func (r *Renderer) renderFilters(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Filters"))
	b.WriteString("\n")
	for i, section := range domain.FilterSections {
		b.WriteString("\n")
		name := section.Name
		if i == state.FilterSection {
			name = "▸ " + name
		} else {
			name = "  " + name
		}
		b.WriteString(r.styles.ModalSection.Render(name))
		b.WriteString("\n  ")
		for j, opt := range section.Options {
			style := r.styles.Option
			switch {
			case state.Pending[section.Name] == opt:
				style = r.styles.OptionPicked
			case i == state.FilterSection && j == state.FilterOption:
				style = r.styles.OptionCursor
			}
			b.WriteString(style.Render(opt))
			// Wrap long option rows
			if (j+1)%6 == 0 && j+1 < len(section.Options) {
				b.WriteString("\n  ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(state.KeyHelp)
	return b.String()
}

func (r *Renderer) renderDetail(state ViewState) string {
	if state.Detail == nil {
		return r.renderHome(state)
	}
	status := ""
	switch {
	case state.Downloading:
		status = r.styles.StatusLoading.Render(state.Spinner + " Downloading…")
	case state.Sharing:
		status = r.styles.StatusLoading.Render(state.Spinner + " Preparing to share…")
	case state.StatusMessage != "":
		status = r.styles.StatusSuccess.Render(state.StatusMessage)
	}

	body := r.imageRender.RenderDetail(*state.Detail, state.Width, state.Height, status)
	if state.Alert != "" {
		body += "\n\n" + r.styles.Alert.Render(state.Alert+"\n"+r.styles.Dim.Render("press enter to dismiss"))
	}
	body += "\n\n" + state.KeyHelp
	return r.styles.Main.Render(body)
}
