package feed

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lemterm/lemterm/app"
	"github.com/lemterm/lemterm/domain"
	"github.com/lemterm/lemterm/tui/termimg"
)

// Thumbnail geometry: native graphics get a fixed pixel square, the
// fallback a small cell grid.
const (
	thumbPixels    = 300
	thumbCellWidth = 24
	thumbCellRows  = 8
)

// startSearch issues one search call for spec. Without a session it
// returns without effect.
func (m Model) startSearch(spec domain.QuerySpec) (Model, tea.Cmd) {
	if !m.sess.Active() {
		return m, nil
	}
	m.reqSeq++
	m.loading = true
	m.err = nil
	m.lastRun = spec

	seq := m.reqSeq
	sess := m.sess
	api := m.api
	return m, func() tea.Msg {
		posts, err := api.Search(context.Background(), sess.Endpoint, sess.Token, spec, defaultLimit)
		if err != nil {
			return ResultsErrMsg{
				Err:      fmt.Errorf("%w: %v", domain.ErrSearchFailed, err),
				ReqSeq:   seq,
				QueryKey: spec.Key(),
			}
		}
		return ResultsMsg{Posts: posts, ReqSeq: seq, QueryKey: spec.Key()}
	}
}

// loadThumb fetches, decodes, and renders one post's thumbnail. The seq of
// the owning search travels with the result so a late arrival for a
// replaced list is discarded instead of attaching to the wrong post.
func (m Model) loadThumb(post domain.Post, seq int) tea.Cmd {
	images := m.images
	cache := m.cache
	kitty := m.kitty
	url := post.ThumbnailURL
	return func() tea.Msg {
		fail := func(err error) tea.Msg {
			return ThumbLoadedMsg{
				PostID: post.ID,
				ReqSeq: seq,
				Err:    fmt.Errorf("%w: %v", domain.ErrThumbnail, err),
			}
		}

		ctx := context.Background()
		data, cached := cachedThumb(ctx, cache, url)
		if !cached {
			var err error
			data, err = images.Fetch(ctx, url)
			if err != nil {
				return fail(err)
			}
			if cache != nil {
				_ = cache.Put(ctx, url, data) // best-effort
			}
		}

		img, err := images.Decode(data)
		if err != nil {
			return fail(err)
		}

		var render string
		if kitty {
			resized := images.Resize(img, thumbPixels, thumbPixels)
			var buf bytes.Buffer
			if err := png.Encode(&buf, resized); err != nil {
				return fail(err)
			}
			render = string(termimg.Encode(buf.Bytes()))
		} else {
			render = termimg.EncodeFallback(img, thumbCellWidth, thumbCellRows)
		}
		return ThumbLoadedMsg{PostID: post.ID, ReqSeq: seq, Render: render}
	}
}

func cachedThumb(ctx context.Context, cache app.ThumbnailCache, url string) ([]byte, bool) {
	if cache == nil {
		return nil, false
	}
	data, ok, err := cache.Get(ctx, url)
	if err != nil || !ok {
		return nil, false
	}
	return data, true
}
