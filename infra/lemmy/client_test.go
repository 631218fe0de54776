package lemmy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
)

type handlerRoundTripper struct {
	h http.Handler
}

func (rt handlerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := newResponseRecorder()
	rt.h.ServeHTTP(rec, req)
	return rec.response(req), nil
}

type responseRecorder struct {
	header http.Header
	body   strings.Builder
	code   int
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{header: make(http.Header), code: http.StatusOK}
}

func (r *responseRecorder) Header() http.Header         { return r.header }
func (r *responseRecorder) Write(p []byte) (int, error) { return r.body.Write(p) }
func (r *responseRecorder) WriteHeader(statusCode int)  { r.code = statusCode }

func (r *responseRecorder) response(req *http.Request) *http.Response {
	return &http.Response{
		StatusCode: r.code,
		Header:     r.header.Clone(),
		Body:       io.NopCloser(strings.NewReader(r.body.String())),
		Request:    req,
	}
}

func newTestClient(h http.Handler) *Client {
	return &Client{
		http: &http.Client{Transport: handlerRoundTripper{h: h}, Timeout: time.Second},
	}
}

const endpoint = "http://lemmy.test"

func TestDiscover_FollowsNodeinfoLink(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/.well-known/nodeinfo":
			fmt.Fprintf(w, `{"links":[{"rel":"self","href":"%s/nodeinfo/2.0.json"}]}`, endpoint)
		case "/nodeinfo/2.0.json":
			fmt.Fprint(w, `{"software":{"name":"lemmy","version":"0.19.3"}}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	info, err := newTestClient(h).Discover(context.Background(), endpoint)
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if info.Software != "lemmy" || info.Version != "0.19.3" {
		t.Fatalf("unexpected server info: %#v", info)
	}
}

func TestDiscover_RejectsIncompatibleServer(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"unreachable": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
		"no links": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"links":[]}`)
		},
		"no software": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/.well-known/nodeinfo" {
				fmt.Fprintf(w, `{"links":[{"href":"%s/nodeinfo/2.0.json"}]}`, endpoint)
				return
			}
			fmt.Fprint(w, `{"software":{}}`)
		},
		"not json": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html>not a fediverse server</html>`)
		},
	}
	for name, h := range cases {
		if _, err := newTestClient(h).Discover(context.Background(), endpoint); err == nil {
			t.Fatalf("%s: expected discovery error", name)
		}
	}
}

func TestLogin_SendsCredentialsAndReturnsJWT(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v3/user/login" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding login body: %v", err)
		}
		if req.UsernameOrEmail != "alice" || req.Password != "hunter2" {
			t.Fatalf("unexpected credentials: %#v", req)
		}
		fmt.Fprint(w, `{"jwt":"token-123"}`)
	})

	jwt, err := newTestClient(h).Login(context.Background(), endpoint, "alice", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if jwt != "token-123" {
		t.Fatalf("jwt = %q, want token-123", jwt)
	}
}

func TestLogin_RejectionAndEmptyToken(t *testing.T) {
	rejected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"couldnt_find_that_username_or_email"}`)
	})
	if _, err := newTestClient(rejected).Login(context.Background(), endpoint, "a", "b"); err == nil {
		t.Fatalf("expected error for rejected login")
	}

	empty := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	if _, err := newTestClient(empty).Login(context.Background(), endpoint, "a", "b"); err == nil {
		t.Fatalf("expected error for response without token")
	}
}

func TestSearch_RequestShapeAndMapping(t *testing.T) {
	var gotQuery url.Values
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/search" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"posts":[
			{"post":{"id":2,"name":"second","body":"b2","thumbnail_url":"http://img/2.png"}},
			{"post":{"id":1,"name":"first","body":""}}
		]}`)
	})

	spec := querySpecForTest("cats")
	posts, err := newTestClient(h).Search(context.Background(), endpoint, "tok", spec, 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if gotQuery.Get("q") != "cats" || gotQuery.Get("type_") != "Posts" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}
	if gotQuery.Get("sort") != "Active" || gotQuery.Get("listing_type") != "All" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}
	if gotQuery.Get("limit") != "20" || gotQuery.Get("auth") != "tok" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}

	// Server ordering is preserved.
	if len(posts) != 2 || posts[0].ID != 2 || posts[1].ID != 1 {
		t.Fatalf("unexpected posts: %#v", posts)
	}
	if posts[0].Title != "second" || posts[0].ThumbnailURL != "http://img/2.png" {
		t.Fatalf("field mapping broken: %#v", posts[0])
	}
	if posts[1].ThumbnailURL != "" {
		t.Fatalf("missing thumbnail must map to empty URL: %#v", posts[1])
	}
}

func TestSearch_AnonymousOmitsAuth(t *testing.T) {
	var gotQuery url.Values
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"posts":[]}`)
	})

	posts, err := newTestClient(h).Search(context.Background(), endpoint, "", querySpecForTest(""), 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty result, got %d posts", len(posts))
	}
	if _, ok := gotQuery["auth"]; ok {
		t.Fatalf("anonymous search must not send auth")
	}
}
