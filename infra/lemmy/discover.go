package lemmy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lemterm/lemterm/app"
)

// nodeinfoIndex is the well-known discovery document listing the actual
// nodeinfo schema locations.
type nodeinfoIndex struct {
	Links []struct {
		Rel  string `json:"rel"`
		Href string `json:"href"`
	} `json:"links"`
}

type nodeinfoDoc struct {
	Software struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"software"`
}

// Discover fetches the endpoint's nodeinfo and returns what the server
// says it is. An endpoint whose nodeinfo is missing, malformed, or names
// no software is not a compatible server.
func (c *Client) Discover(ctx context.Context, endpoint string) (app.ServerInfo, error) {
	data, err := c.get(ctx, endpoint+"/.well-known/nodeinfo")
	if err != nil {
		return app.ServerInfo{}, fmt.Errorf("nodeinfo discovery: %w", err)
	}

	var index nodeinfoIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return app.ServerInfo{}, fmt.Errorf("parsing nodeinfo index: %w", err)
	}
	if len(index.Links) == 0 || strings.TrimSpace(index.Links[0].Href) == "" {
		return app.ServerInfo{}, fmt.Errorf("nodeinfo index has no links")
	}

	data, err = c.get(ctx, index.Links[0].Href)
	if err != nil {
		return app.ServerInfo{}, fmt.Errorf("fetching nodeinfo document: %w", err)
	}

	var doc nodeinfoDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return app.ServerInfo{}, fmt.Errorf("parsing nodeinfo document: %w", err)
	}
	if doc.Software.Name == "" {
		return app.ServerInfo{}, fmt.Errorf("nodeinfo document names no software")
	}

	return app.ServerInfo{
		Software: doc.Software.Name,
		Version:  doc.Software.Version,
	}, nil
}
