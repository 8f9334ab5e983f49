// internal/domain/detection/loop.go
package detection

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/smartcart-backend/internal/config"
	"github.com/your-org/smartcart-backend/internal/domain/cart"
)

// CartSink receives accepted detections. Implemented by the cart service.
type CartSink interface {
	AddOrIncrement(ctx context.Context, sessionID, productName string) error
}

// Event is one classification result entering the acceptance pipeline
type Event struct {
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// Result describes what the pipeline did with one event
type Result struct {
	Label       string  `json:"label"`
	Confidence  float64 `json:"confidence"`
	Accepted    bool    `json:"accepted"`
	AddedToCart bool    `json:"added_to_cart"`
	Reason      string  `json:"reason,omitempty"`
}

// debounceState tracks the last accepted detection for the active session.
// It is reset whenever a new loop (camera session) starts.
type debounceState struct {
	lastLabel      string
	lastAcceptedAt time.Time
}

// Status is a point-in-time snapshot of a loop for the status endpoint
type Status struct {
	SessionID    string `json:"session_id"`
	Running      bool   `json:"running"`
	LastDetected string `json:"last_detected"`
	UnknownItems int    `json:"unknown_items"`
	Cycles       uint64 `json:"cycles"`
}

// Loop drives the capture -> classify -> debounce -> dispatch cycle for
// one shopper session. Cycles run strictly one after another: a cycle's
// cart mutation commits before the next classification starts.
type Loop struct {
	sessionID  string
	classifier Classifier
	frames     FrameSource
	sink       CartSink
	cfg        config.DetectionConfig
	logger     *logrus.Logger
	excluded   map[string]struct{}
	now        func() time.Time

	mu           sync.Mutex
	state        debounceState
	running      bool
	lastDetected string
	unknownItems int
	cycles       uint64
}

// NewLoop creates a detection loop. frames may be nil for push-only
// sessions where classification happens client-side and events arrive
// over the ingest endpoint.
func NewLoop(sessionID string, classifier Classifier, frames FrameSource, sink CartSink, cfg config.DetectionConfig, logger *logrus.Logger) *Loop {
	excluded := make(map[string]struct{}, len(cfg.ExcludedLabels))
	for _, label := range cfg.ExcludedLabels {
		excluded[strings.ToLower(strings.TrimSpace(label))] = struct{}{}
	}

	return &Loop{
		sessionID:  sessionID,
		classifier: classifier,
		frames:     frames,
		sink:       sink,
		cfg:        cfg,
		logger:     logger,
		excluded:   excluded,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Run executes capture cycles until the context is cancelled, then
// releases the camera. Run must only be called for loops with a frame
// source.
func (l *Loop) Run(ctx context.Context) {
	l.mu.Lock()
	l.running = true
	l.mu.Unlock()

	defer func() {
		l.frames.Close()
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
		l.logger.WithField("session_id", l.sessionID).Info("Detection loop stopped, camera released")
	}()

	ticker := time.NewTicker(l.cfg.CycleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.cycle(ctx)
		}
	}
}

// cycle runs one capture -> classify -> process pass
func (l *Loop) cycle(ctx context.Context) {
	l.mu.Lock()
	l.cycles++
	l.mu.Unlock()

	if !l.classifier.Ready() {
		return
	}

	frame, err := l.frames.Next(ctx)
	if errors.Is(err, ErrFrameNotReady) {
		return
	}
	if err != nil {
		l.logger.WithError(err).WithField("session_id", l.sessionID).Error("Frame capture failed, cycle skipped")
		return
	}

	predictions, err := l.classifier.Classify(ctx, frame)
	if err != nil {
		l.logger.WithError(err).WithField("session_id", l.sessionID).Error("Classification failed, cycle skipped")
		return
	}

	top, ok := Top(predictions)
	if !ok {
		return
	}

	l.Process(ctx, Event{
		Label:      top.Label,
		Confidence: top.Probability,
		Timestamp:  l.now(),
	})
}

// Process runs one classification event through the acceptance pipeline:
// confidence threshold, excluded-label filter, debounce, cart dispatch.
// Shared by the camera loop and the HTTP ingest path.
func (l *Loop) Process(ctx context.Context, event Event) Result {
	result := Result{
		Label:      strings.TrimSpace(event.Label),
		Confidence: event.Confidence,
	}

	if event.Confidence <= l.cfg.ConfidenceThreshold {
		result.Reason = "below confidence threshold"
		return result
	}

	if _, ok := l.excluded[strings.ToLower(result.Label)]; ok {
		result.Reason = "excluded label"
		return result
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Debounce: same label inside the window is ignored; a different
	// label is accepted immediately.
	if result.Label == l.state.lastLabel &&
		event.Timestamp.Sub(l.state.lastAcceptedAt) <= l.cfg.DebounceWindow {
		result.Reason = "debounced"
		return result
	}

	result.Accepted = true

	if err := l.sink.AddOrIncrement(ctx, l.sessionID, result.Label); err != nil {
		if errors.Is(err, cart.ErrUnknownProduct) {
			// Not a catalog product: report once, leave debounce state alone
			l.unknownItems++
			result.Reason = "unknown item"
			return result
		}
		l.logger.WithError(err).WithField("session_id", l.sessionID).Error("Cart update failed")
		result.Reason = "cart update failed"
		return result
	}

	l.state.lastLabel = result.Label
	l.state.lastAcceptedAt = event.Timestamp
	l.lastDetected = result.Label
	result.AddedToCart = true
	return result
}

// Status returns a snapshot of the loop state
func (l *Loop) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Status{
		SessionID:    l.sessionID,
		Running:      l.running,
		LastDetected: l.lastDetected,
		UnknownItems: l.unknownItems,
		Cycles:       l.cycles,
	}
}
