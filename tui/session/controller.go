// Package session owns the connection to a Lemmy instance. The controller
// is the single writer of the session; everything else observes it through
// a reactive cell.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/lemterm/lemterm/app"
	"github.com/lemterm/lemterm/domain"
	"github.com/lemterm/lemterm/tui/reactive"
)

// Session is an established (possibly anonymous) connection. The zero
// value means "no session yet".
type Session struct {
	Endpoint      string
	Token         string // Empty for anonymous sessions
	Authenticated bool
	Software      string // What the server's nodeinfo calls itself
}

// Active reports whether a session has been established.
func (s Session) Active() bool { return s.Endpoint != "" }

// Controller performs logins and publishes the resulting session.
type Controller struct {
	api  app.LemmyService
	cell *reactive.Cell[Session]
}

// NewController creates a controller with no session.
func NewController(api app.LemmyService) *Controller {
	return &Controller{
		api:  api,
		cell: reactive.New(Session{}),
	}
}

// Current returns the published session (possibly the zero value).
func (c *Controller) Current() Session { return c.cell.Get() }

// OnChange subscribes to session replacements.
func (c *Controller) OnChange(fn reactive.Observer[Session]) { c.cell.OnChange(fn) }

// Login discovers the endpoint and, when both credentials are supplied,
// authenticates. Empty credentials yield an anonymous read-only session.
// The returned session is not yet published: callers hand it to Publish on
// the event-loop goroutine, keeping observer notification single-threaded.
func (c *Controller) Login(ctx context.Context, endpoint, username, password string) (Session, error) {
	endpoint = NormalizeEndpoint(endpoint)
	if endpoint == "" {
		return Session{}, fmt.Errorf("%w: no endpoint given", domain.ErrConnectionFailed)
	}

	info, err := c.api.Discover(ctx, endpoint)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", domain.ErrConnectionFailed, err)
	}

	sess := Session{Endpoint: endpoint, Software: info.Software}
	if username != "" && password != "" {
		token, err := c.api.Login(ctx, endpoint, username, password)
		if err != nil {
			return Session{}, fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
		}
		sess.Token = token
		sess.Authenticated = true
	}
	return sess, nil
}

// Publish replaces the current session wholesale. Observers fire
// synchronously; publishing an identical session is a no-op.
func (c *Controller) Publish(sess Session) bool {
	return c.cell.Set(sess)
}

// NormalizeEndpoint prefixes a default scheme when none is present and
// strips trailing slashes.
func NormalizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return strings.TrimRight(raw, "/")
}
