package images

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxDownloadBytes matches the upload limit enforced by the HTTP layer.
const maxDownloadBytes = 10 * 1024 * 1024

// Fetcher retrieves images referenced by URL so they can join an upload
// batch alongside files.
type Fetcher struct {
	HTTPClient *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads one image, rejecting oversized and obviously broken
// responses.
func (f *Fetcher) Fetch(url string) ([]byte, error) {
	resp, err := f.HTTPClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image URL returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	if len(data) >= maxDownloadBytes {
		return nil, fmt.Errorf("image too large (max %d bytes)", maxDownloadBytes)
	}
	// Anything this small is a placeholder or an error page
	if len(data) < 1000 {
		return nil, fmt.Errorf("image too small (likely placeholder), size: %d bytes", len(data))
	}

	return data, nil
}
