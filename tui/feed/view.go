package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lemterm/lemterm/domain"
	"github.com/lemterm/lemterm/tui/common"
)

// View renders the search bar and the post list.
func (m Model) View() string {
	var b strings.Builder

	title := m.theme.Title.Render("lemterm")
	where := ""
	if m.sess.Active() {
		who := "anonymous"
		if m.sess.Authenticated {
			who = "logged in"
		}
		where = m.theme.Tagline.Render(fmt.Sprintf("%s (%s)", m.sess.Endpoint, who))
	}
	b.WriteString(title + where + "\n\n")

	b.WriteString(m.renderSearchBar() + "\n\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(fmt.Sprintf("  %s Searching...\n", m.spinner.View()))
	case m.err != nil:
		b.WriteString("  " + m.theme.Error.Render(m.err.Error()) + "\n")
		b.WriteString("\n  Press r to retry.\n")
	case m.searched && len(m.items) == 0:
		b.WriteString("  No posts.\n")
	case len(m.items) > 0:
		b.WriteString(m.renderItems())
	}

	b.WriteString(m.theme.StatusBar.Render(m.helpLine()))
	return b.String()
}

func (m Model) renderSearchBar() string {
	var query string
	if m.Typing() {
		query = m.queryInput.View()
	} else {
		text := m.queryInput.Value()
		if text == "" {
			text = "(press / to search)"
		}
		query = m.theme.Faint.Render(text)
	}

	pills := lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderPill("kind", m.query.Kind.String()),
		" ",
		m.renderPill("sort", m.query.Sort.String()),
		" ",
		m.renderPill("scope", m.query.Scope.String()),
	)

	bar := lipgloss.JoinHorizontal(lipgloss.Center, query, "  ", pills)
	if m.Typing() {
		return m.theme.SelectedBorder.Render(bar)
	}
	return m.theme.UnselectedBorder.Render(bar)
}

func (m Model) renderPill(label, value string) string {
	style := m.theme.Pill
	if m.Typing() {
		style = m.theme.PillActive
	}
	return style.Render(label + ":" + value)
}

func (m Model) renderItems() string {
	count := m.visibleCount()
	end := min(m.top+count, len(m.items))
	selected := m.postsNode.Selection()
	onList := m.tree.Focused() == m.postsNode

	var b strings.Builder
	for i := m.top; i < end; i++ {
		b.WriteString(m.renderItem(m.items[i], onList && i == selected))
		b.WriteByte('\n')
	}
	if end < len(m.items) {
		b.WriteString(m.theme.Faint.Render(fmt.Sprintf("  %d more...", len(m.items)-end)) + "\n")
	}
	return b.String()
}

func (m Model) renderItem(it Item, selected bool) string {
	width := m.width - 6
	if width < 20 {
		width = 74
	}

	var parts []string
	parts = append(parts, m.theme.PostTitle.Render(common.TruncateLines(it.Post.Title, width, 1)))
	if it.Post.Body != "" {
		parts = append(parts, m.theme.PostBody.Render(common.TruncateLines(it.Post.Body, width, 2)))
	}
	if thumb := m.renderThumb(it); thumb != "" {
		parts = append(parts, thumb)
	}

	box := strings.Join(parts, "\n")
	if selected {
		return m.theme.SelectedBorder.Width(width + 2).Render(box)
	}
	return m.theme.UnselectedBorder.Width(width + 2).Render(box)
}

// renderThumb shows the thumbnail lifecycle inline. A failed or missing
// thumbnail never hides the post's text.
func (m Model) renderThumb(it Item) string {
	switch it.State {
	case domain.ThumbnailLoading:
		return m.theme.Faint.Render(m.spinner.View() + " loading preview")
	case domain.ThumbnailFailed:
		return m.theme.Faint.Render("preview unavailable")
	case domain.ThumbnailReady:
		return it.Thumb
	default:
		return ""
	}
}

// helpLine shows where focus sits and what keys apply, collapsing to the
// essentials when the window is too narrow for the full reference.
func (m Model) helpLine() string {
	crumb := strings.Join(m.tree.Path(), " > ")
	full := "  " + crumb + " • ↑/↓ move • enter/l in • esc/h out • / search • ctrl+k/s/o kind/sort/scope • r refresh • t theme • ctrl+l login • ctrl+c quit"
	if m.width > 0 && common.DisplayWidth(full) > m.width {
		return "  " + crumb + " • / search • r refresh • ctrl+c quit"
	}
	return full
}

// visibleCount approximates how many post boxes fit in the window.
func (m Model) visibleCount() int {
	itemHeight := 5
	if !m.kitty {
		itemHeight += thumbCellRows
	}
	reserved := 9
	count := (m.height - reserved) / itemHeight
	if count < 1 {
		count = 1
	}
	return count
}
