// internal/domain/detection/classifier.go
package detection

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/smartcart-backend/internal/config"
)

// ErrNotLoaded is returned when classification is attempted before the
// model finished loading, or after loading failed.
var ErrNotLoaded = errors.New("classifier model not loaded")

// Prediction is one per-class probability from the classifier, in the
// model's fixed class ordering.
type Prediction struct {
	Label       string  `json:"class_name"`
	Probability float64 `json:"probability"`
}

// Classifier wraps an opaque pre-trained image classifier
type Classifier interface {
	// Classify returns the ranked per-class probabilities for a frame
	Classify(ctx context.Context, frame []byte) ([]Prediction, error)
	// Ready reports whether the model has loaded successfully
	Ready() bool
}

// RemoteClassifier talks to a model-serving endpoint that exposes the
// trained model's metadata and a predict route. Loading happens once per
// application lifetime; there is no retry on load failure.
type RemoteClassifier struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger

	mu      sync.RWMutex
	labels  []string
	ready   bool
	loadErr error
}

// modelMetadata mirrors the metadata.json shape published alongside the model
type modelMetadata struct {
	ModelName string   `json:"modelName"`
	Labels    []string `json:"labels"`
}

// NewRemoteClassifier creates a classifier adapter for the configured model service
func NewRemoteClassifier(cfg *config.Config, logger *logrus.Logger) *RemoteClassifier {
	return &RemoteClassifier{
		baseURL: cfg.Classifier.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Classifier.PredictTimeout,
		},
		logger: logger,
	}
}

// Load fetches the model metadata and marks the classifier ready.
// A failed load is recorded and reported once; prediction stays disabled.
func (c *RemoteClassifier) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready {
		return nil
	}

	metadata, err := c.fetchMetadata(ctx)
	if err != nil {
		c.loadErr = err
		c.logger.WithError(err).Error("Model load failed, detection disabled")
		return fmt.Errorf("failed to load model: %w", err)
	}

	c.labels = metadata.Labels
	c.ready = true
	c.logger.WithFields(logrus.Fields{
		"model":   metadata.ModelName,
		"classes": len(metadata.Labels),
	}).Info("Model loaded successfully")

	return nil
}

// Ready reports whether the model has loaded successfully
func (c *RemoteClassifier) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// LoadError returns the recorded load failure, if any
func (c *RemoteClassifier) LoadError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}

// Labels returns the model's class labels in their fixed ordering
func (c *RemoteClassifier) Labels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.labels
}

// Classify posts a JPEG frame to the model's predict route and returns
// one probability per known class.
func (c *RemoteClassifier) Classify(ctx context.Context, frame []byte) ([]Prediction, error) {
	if !c.Ready() {
		return nil, ErrNotLoaded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "image/jpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("predict call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("predict call failed with status %d", resp.StatusCode)
	}

	var predictions []Prediction
	if err := json.NewDecoder(resp.Body).Decode(&predictions); err != nil {
		return nil, fmt.Errorf("failed to parse predictions: %w", err)
	}

	return predictions, nil
}

func (c *RemoteClassifier) fetchMetadata(ctx context.Context) (*modelMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/metadata.json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metadata unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("metadata request failed with status %d", resp.StatusCode)
	}

	var metadata modelMetadata
	if err := json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		return nil, fmt.Errorf("malformed model metadata: %w", err)
	}

	if len(metadata.Labels) == 0 {
		return nil, fmt.Errorf("model metadata contains no class labels")
	}

	return &metadata, nil
}

// Top returns the prediction with the highest probability. Ties are
// broken by the first entry in the classifier's fixed class ordering.
func Top(predictions []Prediction) (Prediction, bool) {
	if len(predictions) == 0 {
		return Prediction{}, false
	}

	top := predictions[0]
	for _, p := range predictions[1:] {
		if p.Probability > top.Probability {
			top = p
		}
	}
	return top, true
}
