package app

import (
	"context"

	"github.com/lemterm/lemterm/domain"
)

// ServerInfo is what nodeinfo discovery reveals about an instance.
type ServerInfo struct {
	Software string
	Version  string
}

// LemmyService talks to a Lemmy instance. Endpoint is passed per call
// because the user chooses it at login time, not at process start.
type LemmyService interface {
	// Discover probes the endpoint's nodeinfo document. An error means the
	// endpoint is unreachable or is not a compatible server.
	Discover(ctx context.Context, endpoint string) (ServerInfo, error)

	// Login authenticates and returns the session token (JWT).
	Login(ctx context.Context, endpoint, username, password string) (string, error)

	// Search runs one search call. Token may be empty for anonymous
	// sessions. Results keep the server's ordering.
	Search(ctx context.Context, endpoint, token string, spec domain.QuerySpec, limit int) ([]domain.Post, error)
}
