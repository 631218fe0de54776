package feed

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/lemterm/lemterm/app"
	"github.com/lemterm/lemterm/domain"
	"github.com/lemterm/lemterm/tui/common"
	"github.com/lemterm/lemterm/tui/session"
)

type stubAPI struct {
	posts     []domain.Post
	searchErr error
	searches  *int
}

func (s stubAPI) Discover(context.Context, string) (app.ServerInfo, error) {
	return app.ServerInfo{Software: "lemmy"}, nil
}

func (s stubAPI) Login(context.Context, string, string, string) (string, error) {
	return "jwt", nil
}

func (s stubAPI) Search(_ context.Context, _, _ string, _ domain.QuerySpec, _ int) ([]domain.Post, error) {
	if s.searches != nil {
		*s.searches++
	}
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.posts, nil
}

type stubImages struct {
	data      []byte
	fetchErr  error
	decodeErr error
}

func (s stubImages) Fetch(context.Context, string) ([]byte, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.data, nil
}

func (s stubImages) Decode([]byte) (image.Image, error) {
	if s.decodeErr != nil {
		return nil, s.decodeErr
	}
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	return img, nil
}

func (s stubImages) Resize(img image.Image, _, _ int) image.Image { return img }

type stubCache struct {
	store map[string][]byte
	puts  *int
}

func newStubCache() stubCache {
	puts := 0
	return stubCache{store: map[string][]byte{}, puts: &puts}
}

func (s stubCache) Get(_ context.Context, url string) ([]byte, bool, error) {
	data, ok := s.store[url]
	return data, ok, nil
}

func (s stubCache) Put(_ context.Context, url string, data []byte) error {
	*s.puts++
	s.store[url] = data
	return nil
}

func makePost(id int64, thumbURL string) domain.Post {
	return domain.Post{
		ID:           id,
		Title:        fmt.Sprintf("Post %d", id),
		Body:         "body text",
		ThumbnailURL: thumbURL,
	}
}

func newTestModel(api app.LemmyService) Model {
	m := New(Deps{API: api, Images: stubImages{}, Theme: common.Dark()})
	m.sess = session.Session{Endpoint: "https://lemmy.example"}
	m.width = 80
	m.height = 40
	return m
}

var errBoom = errors.New("boom")
