// internal/domain/detection/frame.go
package detection

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrFrameNotReady signals that the camera is acquired but not yet
// producing frames. The detection cycle skips and tries again.
var ErrFrameNotReady = errors.New("camera not producing frames yet")

// FrameSource is the camera boundary: a live feed of captured frames.
// Close must be called on session teardown to release the device.
type FrameSource interface {
	Next(ctx context.Context) ([]byte, error)
	Close() error
}

// SnapshotSource pulls JPEG snapshots from an HTTP camera endpoint,
// requesting a preferred capture resolution.
type SnapshotSource struct {
	url        string
	httpClient *http.Client
}

// NewSnapshotSource creates a frame source for an HTTP camera snapshot endpoint
func NewSnapshotSource(url string, client *http.Client) *SnapshotSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SnapshotSource{
		url:        url,
		httpClient: client,
	}
}

// Next fetches the current frame. A 503 from the camera means the feed
// is still warming up and maps to ErrFrameNotReady.
func (s *SnapshotSource) Next(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot request: %w", err)
	}

	// Preferred capture resolution hint
	q := req.URL.Query()
	q.Set("width", "640")
	q.Set("height", "480")
	req.URL.RawQuery = q.Encode()

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("camera unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusNoContent {
		return nil, ErrFrameNotReady
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("camera returned status %d", resp.StatusCode)
	}

	frame, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame: %w", err)
	}

	return frame, nil
}

// Close releases the capture connection
func (s *SnapshotSource) Close() error {
	s.httpClient.CloseIdleConnections()
	return nil
}
