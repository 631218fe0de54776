package lemmy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lemterm/lemterm/domain"
)

// lemmyPost is the subset of Lemmy's Post entity we care about.
type lemmyPost struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Body         string `json:"body"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type searchResponse struct {
	Posts []struct {
		Post lemmyPost `json:"post"`
	} `json:"posts"`
}

// Search runs one search call. Token may be empty for anonymous sessions.
// Result ordering is exactly the server's; no client-side re-sorting.
func (c *Client) Search(ctx context.Context, endpoint, token string, spec domain.QuerySpec, limit int) ([]domain.Post, error) {
	q := url.Values{}
	q.Set("q", spec.Text)
	q.Set("type_", spec.Kind.String())
	q.Set("sort", spec.Sort.String())
	q.Set("listing_type", spec.Scope.String())
	q.Set("limit", strconv.Itoa(limit))
	if token != "" {
		q.Set("auth", token)
	}

	data, err := c.get(ctx, endpoint+"/api/v3/search?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	posts := make([]domain.Post, 0, len(resp.Posts))
	for _, entry := range resp.Posts {
		posts = append(posts, domain.Post{
			ID:           entry.Post.ID,
			Title:        entry.Post.Name,
			Body:         entry.Post.Body,
			ThumbnailURL: entry.Post.ThumbnailURL,
		})
	}
	return posts, nil
}
