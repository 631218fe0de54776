// Package feed owns the search pipeline: it issues search calls against
// the current session, installs result lists, loads thumbnails in the
// background, and renders the scrollable post list.
package feed

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lemterm/lemterm/app"
	"github.com/lemterm/lemterm/domain"
	"github.com/lemterm/lemterm/tui/common"
	"github.com/lemterm/lemterm/tui/focus"
	"github.com/lemterm/lemterm/tui/session"
)

const defaultLimit = 20

// Item is one post in the active result list, together with its
// thumbnail lifecycle.
type Item struct {
	Post  domain.Post
	State domain.ThumbnailState
	Thumb string // Rendered escape stream or half-block grid
}

// sessionInbox receives session replacements from the reactive cell. The
// observer fires synchronously on the event-loop goroutine during Publish;
// the model consumes it on the next SessionChangedMsg.
type sessionInbox struct {
	sess  session.Session
	dirty bool
}

// Model holds the state of the search + feed view.
type Model struct {
	api    app.LemmyService
	images app.ImageService
	cache  app.ThumbnailCache // may be nil
	inbox  *sessionInbox

	sess    session.Session
	query   domain.QuerySpec
	lastRun domain.QuerySpec
	items   []Item

	tree       *focus.Tree
	browse     *focus.Node
	searchNode *focus.Node
	postsNode  *focus.Node

	queryInput textinput.Model
	spinner    spinner.Model

	reqSeq   int
	loading  bool
	searched bool
	err      error

	kitty  bool
	keys   common.KeyMap
	theme  common.Theme
	width  int
	height int
	top    int // first visible item index
}

// Deps wires the feed's collaborators. Plain struct, not a DI container.
type Deps struct {
	API      app.LemmyService
	Images   app.ImageService
	Cache    app.ThumbnailCache
	Sessions *session.Controller
	Kitty    bool
	Theme    common.Theme
	Query    domain.QuerySpec // restored from UI state
}

// New creates the feed model and subscribes it to session replacements.
func New(deps Deps) Model {
	in := textinput.New()
	in.Placeholder = "Search..."
	in.CharLimit = 256
	in.Width = 40
	in.SetValue(deps.Query.Text)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = deps.Theme.Spinner

	searchNode := focus.NewNode("search")
	postsNode := focus.NewNode("posts")
	browse := focus.NewNode("browse", searchNode, postsNode)

	inbox := &sessionInbox{}
	if deps.Sessions != nil {
		deps.Sessions.OnChange(func(old, new session.Session) {
			inbox.sess = new
			inbox.dirty = true
		})
	}

	return Model{
		api:        deps.API,
		images:     deps.Images,
		cache:      deps.Cache,
		inbox:      inbox,
		query:      deps.Query,
		tree:       focus.NewTree(browse),
		browse:     browse,
		searchNode: searchNode,
		postsNode:  postsNode,
		queryInput: in,
		spinner:    sp,
		kitty:      deps.Kitty,
		keys:       common.DefaultKeyMap(),
		theme:      deps.Theme,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetTheme swaps the palette.
func (m Model) SetTheme(theme common.Theme) Model {
	m.theme = theme
	m.spinner.Style = theme.Spinner
	return m
}

// Typing reports whether keystrokes belong to the query input.
func (m Model) Typing() bool {
	return m.tree.Focused() == m.searchNode
}

// Query returns the current (possibly unsubmitted) query spec.
func (m Model) Query() domain.QuerySpec {
	q := m.query
	q.Text = m.queryInput.Value()
	return q
}

// Items exposes the active result list for rendering and tests. Owned
// exclusively by the feed; callers must not mutate it.
func (m Model) Items() []Item {
	return m.items
}

// Selection returns the selected post index.
func (m Model) Selection() int {
	return m.postsNode.Selection()
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SessionChangedMsg:
		return m.consumeSession()

	case ResultsMsg:
		return m.installResults(msg)

	case ResultsErrMsg:
		if msg.ReqSeq != m.reqSeq || msg.QueryKey != m.lastRun.Key() {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ThumbLoadedMsg:
		return m.installThumb(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// consumeSession reacts to a session published through the reactive cell:
// a genuinely new session re-runs the current query. The cell's equality
// dedup means re-publishing an identical session never lands here.
func (m Model) consumeSession() (Model, tea.Cmd) {
	if !m.inbox.dirty {
		return m, nil
	}
	m.inbox.dirty = false
	m.sess = m.inbox.sess
	return m.startSearch(m.Query())
}

// installResults replaces the post list. Stale responses (an older request
// or a different query) are discarded wholesale.
func (m Model) installResults(msg ResultsMsg) (Model, tea.Cmd) {
	if msg.ReqSeq != m.reqSeq || msg.QueryKey != m.lastRun.Key() {
		return m, nil
	}
	m.loading = false
	m.err = nil
	m.searched = true
	m.top = 0

	// The previous list is gone before any new post is installed.
	m.items = make([]Item, 0, len(msg.Posts))
	nodes := make([]*focus.Node, 0, len(msg.Posts))
	var cmds []tea.Cmd
	for _, p := range msg.Posts {
		state := domain.ThumbnailNotRequested
		if p.ThumbnailURL != "" {
			state = domain.ThumbnailLoading
			cmds = append(cmds, m.loadThumb(p, msg.ReqSeq))
		}
		m.items = append(m.items, Item{Post: p, State: state})
		nodes = append(nodes, focus.NewNode(fmt.Sprintf("post-%d", p.ID)))
	}
	m.postsNode.SetChildren(nodes...)

	// Search-result auto-focus: land on the first post. An empty result
	// moves no focus at all.
	if len(m.items) > 0 {
		m.tree.Focus(m.postsNode)
		m.queryInput.Blur()
	}
	return m, tea.Batch(cmds...)
}

// installThumb applies one finished thumbnail fetch, unless its search has
// been superseded or its post no longer exists.
func (m Model) installThumb(msg ThumbLoadedMsg) (Model, tea.Cmd) {
	if msg.ReqSeq != m.reqSeq {
		return m, nil
	}
	for i := range m.items {
		if m.items[i].Post.ID != msg.PostID {
			continue
		}
		if msg.Err != nil {
			m.items[i].State = domain.ThumbnailFailed
		} else {
			m.items[i].State = domain.ThumbnailReady
			m.items[i].Thumb = msg.Render
		}
		break
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Typing() {
		switch msg.String() {
		case "enter":
			return m.submitSearch()
		case "esc":
			m.tree.Ascend()
			m.queryInput.Blur()
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.CycleKind):
			m.query.Kind = m.query.Kind.Next()
			return m, nil
		case key.Matches(msg, m.keys.CycleSort):
			m.query.Sort = m.query.Sort.Next()
			return m, nil
		case key.Matches(msg, m.keys.CycleScope):
			m.query.Scope = m.query.Scope.Next()
			return m, nil
		}
		var cmd tea.Cmd
		m.queryInput, cmd = m.queryInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.StartSearch):
		return m.startTyping()

	case key.Matches(msg, m.keys.Refresh):
		if !m.searched {
			return m, nil
		}
		return m.startSearch(m.lastRun)

	case key.Matches(msg, m.keys.Up):
		m.tree.Move(focus.Previous)
		m.ensureVisible()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.tree.Move(focus.Next)
		m.ensureVisible()
		return m, nil

	case key.Matches(msg, m.keys.Descend):
		m.tree.Descend()
		if m.tree.Focused() == m.searchNode {
			return m.startTyping()
		}
		return m, nil

	case key.Matches(msg, m.keys.Ascend):
		m.tree.Ascend()
		return m, nil

	case key.Matches(msg, m.keys.CycleKind):
		m.query.Kind = m.query.Kind.Next()
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		m.query.Sort = m.query.Sort.Next()
		return m, nil

	case key.Matches(msg, m.keys.CycleScope):
		m.query.Scope = m.query.Scope.Next()
		return m, nil
	}

	return m, nil
}

// startTyping clears and focuses the query input.
func (m Model) startTyping() (Model, tea.Cmd) {
	m.tree.Focus(m.searchNode)
	m.queryInput.SetValue("")
	return m, m.queryInput.Focus()
}

func (m Model) submitSearch() (Model, tea.Cmd) {
	spec := m.Query()
	m.query = spec
	m.tree.Focus(m.browse)
	m.queryInput.Blur()
	return m.startSearch(spec)
}

// ensureVisible keeps the selected post inside the rendered window.
func (m *Model) ensureVisible() {
	count := m.visibleCount()
	sel := m.postsNode.Selection()
	if sel < m.top {
		m.top = sel
	}
	if sel >= m.top+count {
		m.top = sel - count + 1
	}
	if m.top < 0 {
		m.top = 0
	}
}
