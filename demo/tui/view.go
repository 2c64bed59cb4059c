package tui

import (
	"fmt"
	"strings"

	"dhootha/config"
	"dhootha/present"
)

const visibleCards = 5

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📰 Dhootha Daily News"))
	b.WriteString("\n")

	b.WriteString(m.control(FieldLanguage, "Language", "◀ "+config.Languages[m.Language].Name+" ▶"))
	b.WriteString(m.control(FieldSource, "Source", "◀ "+config.NewsSources[m.Source].Name+" ▶"))
	b.WriteString(m.control(FieldQuery, "Search", m.Query))
	b.WriteString(m.control(FieldDate, "Date", m.Date))
	b.WriteString("\n")

	b.WriteString(m.statusText())
	b.WriteString("\n\n")

	if m.State == StateDone && m.Display.Digest != "" {
		b.WriteString(BoxStyle.Render(HighlightStyle.Render("Digest") + "\n" + m.Display.Digest))
		b.WriteString("\n")
	}

	if m.State == StateDone {
		cards := m.Display.Cards
		end := m.Offset + visibleCards
		if end > len(cards) {
			end = len(cards)
		}
		for i := m.Offset; i < end; i++ {
			b.WriteString(renderCard(cards[i]))
			b.WriteString("\n")
		}
		if len(cards) > visibleCards {
			b.WriteString(InfoStyle.Render(fmt.Sprintf("Showing %d-%d of %d", m.Offset+1, end, len(cards))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(TextFooter))
	return b.String()
}

func (m Model) control(f Field, label, value string) string {
	line := fmt.Sprintf("%-9s %s", label+":", value)
	if m.Focus == f {
		return FocusStyle.Render("› "+line) + "\n"
	}
	return InfoStyle.Render("  "+line) + "\n"
}

func renderCard(c present.Card) string {
	var b strings.Builder
	b.WriteString(CardTitleStyle.Render(c.Title))
	b.WriteString("\n")

	meta := c.Source
	if c.Published != "" {
		meta += " · " + c.Published
	}
	if c.Kind == "rss" {
		meta += " · RSS"
	}
	b.WriteString(InfoStyle.Render(meta))
	if c.Summary != "" {
		b.WriteString("\n")
		b.WriteString(c.Summary)
	}
	b.WriteString("\n")
	b.WriteString(LinkStyle.Render(c.URL))
	return CardStyle.Render(b.String())
}
