package feed

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/lemterm/lemterm/domain"
)

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func TestView_EmptyResultsShowNoPosts(t *testing.T) {
	m := newTestModel(stubAPI{})
	m.searched = true

	out := plainView(m)
	if !strings.Contains(out, "No posts.") {
		t.Fatalf("empty results should say so:\n%s", out)
	}
}

func TestView_ErrorShownWithRetryHint(t *testing.T) {
	m := newTestModel(stubAPI{})
	m.err = domain.ErrSearchFailed

	out := plainView(m)
	if !strings.Contains(out, domain.ErrSearchFailed.Error()) {
		t.Fatalf("error should be visible:\n%s", out)
	}
	if !strings.Contains(out, "Press r to retry") {
		t.Fatalf("error view should offer retry:\n%s", out)
	}
}

func TestView_LoadingShowsSpinnerLine(t *testing.T) {
	m := newTestModel(stubAPI{})
	m.loading = true

	if !strings.Contains(plainView(m), "Searching...") {
		t.Fatalf("loading state should be visible")
	}
}

func TestView_RendersTitlesAndQueryPills(t *testing.T) {
	m := newTestModel(stubAPI{})
	m.reqSeq = 1
	m, _ = m.Update(ResultsMsg{
		Posts:    []domain.Post{makePost(1, ""), makePost(2, "")},
		ReqSeq:   1,
		QueryKey: m.lastRun.Key(),
	})

	out := plainView(m)
	for _, want := range []string{"Post 1", "Post 2", "kind:Posts", "sort:Active", "scope:All"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestView_WindowHidesOffscreenPosts(t *testing.T) {
	m := newTestModel(stubAPI{})
	m.height = 24
	m.reqSeq = 1
	posts := make([]domain.Post, 8)
	for i := range posts {
		posts[i] = makePost(int64(i+1), "")
	}
	m, _ = m.Update(ResultsMsg{Posts: posts, ReqSeq: 1, QueryKey: m.lastRun.Key()})

	out := plainView(m)
	if !strings.Contains(out, "Post 1") {
		t.Fatalf("first post should be visible")
	}
	if strings.Contains(out, "Post 8") {
		t.Fatalf("posts past the window should be hidden")
	}
	if !strings.Contains(out, "more") {
		t.Fatalf("view should hint at hidden posts:\n%s", out)
	}
}

func TestView_ThumbnailLifecycleMarkers(t *testing.T) {
	m := newTestModel(stubAPI{})
	m.items = []Item{{Post: makePost(1, "u"), State: domain.ThumbnailLoading}}

	if !strings.Contains(plainView(m), "loading preview") {
		t.Fatalf("loading thumbnail should be marked")
	}

	m.items[0].State = domain.ThumbnailFailed
	if !strings.Contains(plainView(m), "preview unavailable") {
		t.Fatalf("failed thumbnail should be marked without hiding the post")
	}
	if !strings.Contains(plainView(m), "Post 1") {
		t.Fatalf("post text must survive a failed thumbnail")
	}

	m.items[0].State = domain.ThumbnailReady
	m.items[0].Thumb = "THUMBDATA"
	if !strings.Contains(m.View(), "THUMBDATA") {
		t.Fatalf("ready thumbnail should render its payload")
	}
}

func TestView_StatusLineShowsFocusPath(t *testing.T) {
	m := newTestModel(stubAPI{})
	if !strings.Contains(plainView(m), "browse") {
		t.Fatalf("status line should show the focused path")
	}

	m.reqSeq = 1
	m, _ = m.Update(ResultsMsg{
		Posts:    []domain.Post{makePost(1, "")},
		ReqSeq:   1,
		QueryKey: m.lastRun.Key(),
	})
	if !strings.Contains(plainView(m), "browse > posts") {
		t.Fatalf("focusing the post list should extend the path:\n%s", plainView(m))
	}
}

func TestView_HelpCollapsesOnNarrowWindows(t *testing.T) {
	m := newTestModel(stubAPI{})
	m.width = 200
	if !strings.Contains(plainView(m), "kind/sort/scope") {
		t.Fatalf("wide windows should show the full key reference")
	}

	m.width = 40
	out := plainView(m)
	if strings.Contains(out, "kind/sort/scope") {
		t.Fatalf("narrow windows should collapse the key reference")
	}
	if !strings.Contains(out, "/ search") {
		t.Fatalf("collapsed help should keep the essentials:\n%s", out)
	}
}

func TestView_SessionLineShowsEndpointAndAuth(t *testing.T) {
	m := newTestModel(stubAPI{})
	out := plainView(m)
	if !strings.Contains(out, "lemmy.example") || !strings.Contains(out, "anonymous") {
		t.Fatalf("anonymous session should be shown:\n%s", out)
	}

	m.sess.Authenticated = true
	if !strings.Contains(plainView(m), "logged in") {
		t.Fatalf("authenticated session should be shown")
	}
}
