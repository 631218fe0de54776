package app

import (
	"context"
	"image"
)

// ImageService retrieves and prepares remote images for terminal display.
type ImageService interface {
	// Fetch downloads the raw image bytes.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Decode turns raw bytes into a bitmap.
	Decode(data []byte) (image.Image, error)

	// Resize scales a bitmap to the given pixel dimensions.
	Resize(img image.Image, w, h int) image.Image
}

// ThumbnailCache stores fetched thumbnail bytes keyed by URL. Best-effort:
// callers treat every failure as a miss and go back to the network.
type ThumbnailCache interface {
	Get(ctx context.Context, url string) ([]byte, bool, error)
	Put(ctx context.Context, url string, data []byte) error
}
