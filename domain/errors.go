package domain

import "errors"

var (
	// ErrConnectionFailed indicates the instance is unreachable or does not
	// identify itself as a compatible server.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrAuthFailed indicates the instance rejected the credentials.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrSearchFailed indicates a search call could not be completed.
	ErrSearchFailed = errors.New("search failed")

	// ErrThumbnail indicates a thumbnail could not be fetched or decoded.
	// Never fatal to its post: title and body still render.
	ErrThumbnail = errors.New("thumbnail unavailable")
)
