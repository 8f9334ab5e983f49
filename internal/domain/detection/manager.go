// internal/domain/detection/manager.go
package detection

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/smartcart-backend/internal/config"
)

// Manager owns at most one detection loop per shopper session and is
// responsible for camera acquisition and teardown.
type Manager struct {
	classifier Classifier
	sink       CartSink
	config     *config.Config
	logger     *logrus.Logger
	newSource  func(cameraURL string) FrameSource

	mu      sync.Mutex
	loops   map[string]*loopHandle
	ingests map[string]*Loop
}

type loopHandle struct {
	loop   *Loop
	cancel context.CancelFunc
	done   chan struct{}
}

// NewManager creates a detection manager
func NewManager(classifier Classifier, sink CartSink, cfg *config.Config, logger *logrus.Logger) *Manager {
	return &Manager{
		classifier: classifier,
		sink:       sink,
		config:     cfg,
		logger:     logger,
		newSource: func(cameraURL string) FrameSource {
			return NewSnapshotSource(cameraURL, nil)
		},
		loops:   make(map[string]*loopHandle),
		ingests: make(map[string]*Loop),
	}
}

// Start begins a camera-driven detection session. An already-running
// loop for the session is stopped first so the camera is re-acquired
// cleanly.
func (m *Manager) Start(sessionID, cameraURL string) error {
	if cameraURL == "" {
		return fmt.Errorf("camera URL is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if handle, ok := m.loops[sessionID]; ok {
		handle.cancel()
		<-handle.done
		delete(m.loops, sessionID)
	}

	loop := NewLoop(sessionID, m.classifier, m.newSource(cameraURL), m.sink, m.config.Detection, m.logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Run(ctx)
	}()

	m.loops[sessionID] = &loopHandle{loop: loop, cancel: cancel, done: done}
	m.logger.WithField("session_id", sessionID).Info("Detection loop started")
	return nil
}

// Stop ends the camera session for a shopper, releasing the device
func (m *Manager) Stop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if handle, ok := m.loops[sessionID]; ok {
		handle.cancel()
		<-handle.done
		delete(m.loops, sessionID)
	}
}

// Ingest routes a client-side classification event through the session's
// acceptance pipeline. Sessions without a camera loop get a push-only
// pipeline with its own debounce state.
func (m *Manager) Ingest(ctx context.Context, sessionID string, event Event) Result {
	m.mu.Lock()
	var loop *Loop
	if handle, ok := m.loops[sessionID]; ok {
		loop = handle.loop
	} else {
		loop, ok = m.ingests[sessionID]
		if !ok {
			loop = NewLoop(sessionID, m.classifier, nil, m.sink, m.config.Detection, m.logger)
			m.ingests[sessionID] = loop
		}
	}
	m.mu.Unlock()

	return loop.Process(ctx, event)
}

// Status reports the loop state for a session, if any
func (m *Manager) Status(sessionID string) (Status, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if handle, ok := m.loops[sessionID]; ok {
		return handle.loop.Status(), true
	}
	if loop, ok := m.ingests[sessionID]; ok {
		return loop.Status(), true
	}
	return Status{}, false
}

// StopAll tears down every active loop. Called on server shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for sessionID, handle := range m.loops {
		handle.cancel()
		<-handle.done
		delete(m.loops, sessionID)
	}
}
