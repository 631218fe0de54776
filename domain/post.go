package domain

// ThumbnailState tracks the lifecycle of a post's optional preview image.
// A post without a thumbnail URL stays NotRequested forever; one with a URL
// moves Loading -> Ready or Loading -> Failed and never regresses.
type ThumbnailState int

const (
	ThumbnailNotRequested ThumbnailState = iota
	ThumbnailLoading
	ThumbnailReady
	ThumbnailFailed
)

func (s ThumbnailState) String() string {
	switch s {
	case ThumbnailLoading:
		return "loading"
	case ThumbnailReady:
		return "ready"
	case ThumbnailFailed:
		return "failed"
	default:
		return "not requested"
	}
}

// Post is a single search result from a Lemmy instance.
type Post struct {
	ID           int64
	Title        string
	Body         string // Markdown as returned by the server
	ThumbnailURL string // Empty when the post has no preview image
}
