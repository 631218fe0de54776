package feed

import "github.com/lemterm/lemterm/domain"

// SessionChangedMsg nudges the feed to consume a session replacement that
// the controller published through the reactive cell.
type SessionChangedMsg struct{}

// ResultsMsg is sent when a search call completes successfully. ReqSeq and
// QueryKey identify which request it answers; responses for superseded
// requests are discarded.
type ResultsMsg struct {
	Posts    []domain.Post
	ReqSeq   int
	QueryKey string
}

// ResultsErrMsg is sent when a search call fails.
type ResultsErrMsg struct {
	Err      error
	ReqSeq   int
	QueryKey string
}

// ThumbLoadedMsg is sent when one post's thumbnail finishes loading, in
// either direction. ReqSeq ties it to the search that requested it.
type ThumbLoadedMsg struct {
	PostID int64
	ReqSeq int
	Render string
	Err    error
}
