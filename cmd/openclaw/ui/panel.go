package ui

import "strings"

// Panel renders a bordered box with an optional title, the CLI's stand-in
// for rich informational panels.
type Panel struct {
	Title string
	Body  string
}

// NewPanel creates a panel with the given title and body lines.
func NewPanel(title string, lines ...string) *Panel {
	return &Panel{
		Title: title,
		Body:  strings.Join(lines, "\n"),
	}
}

// View renders the panel using the provided styles.
func (p *Panel) View(styles Styles) string {
	var sb strings.Builder
	if p.Title != "" {
		sb.WriteString(styles.Title.Render(p.Title))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.PanelBox.Render(p.Body))
	sb.WriteString("\n")
	return sb.String()
}
