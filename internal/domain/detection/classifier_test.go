// internal/domain/detection/classifier_test.go
package detection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/smartcart-backend/internal/config"
)

func classifierConfig(baseURL string) *config.Config {
	return &config.Config{
		Classifier: config.ClassifierConfig{
			BaseURL:        baseURL,
			LoadTimeout:    5 * time.Second,
			PredictTimeout: 5 * time.Second,
		},
	}
}

func TestRemoteClassifier_LoadAndClassify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/model/metadata.json":
			w.Write([]byte(`{"modelName":"smart-cart","labels":["background","Lays","Coca Cola"]}`))
		case "/model/predict":
			assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
			w.Write([]byte(`[{"class_name":"background","probability":0.01},{"class_name":"Lays","probability":0.99}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	classifier := NewRemoteClassifier(classifierConfig(server.URL+"/model"), testLogger())

	require.NoError(t, classifier.Load(context.Background()))
	assert.True(t, classifier.Ready())
	assert.Equal(t, []string{"background", "Lays", "Coca Cola"}, classifier.Labels())

	predictions, err := classifier.Classify(context.Background(), []byte("jpeg-bytes"))
	require.NoError(t, err)
	require.Len(t, predictions, 2)
	assert.Equal(t, "Lays", predictions[1].Label)
	assert.InDelta(t, 0.99, predictions[1].Probability, 1e-9)
}

func TestRemoteClassifier_LoadFailureDisablesDetection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	classifier := NewRemoteClassifier(classifierConfig(server.URL+"/model"), testLogger())

	require.Error(t, classifier.Load(context.Background()))
	assert.False(t, classifier.Ready())
	assert.Error(t, classifier.LoadError())

	_, err := classifier.Classify(context.Background(), []byte("jpeg-bytes"))
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestRemoteClassifier_RejectsEmptyLabelSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"modelName":"empty","labels":[]}`))
	}))
	defer server.Close()

	classifier := NewRemoteClassifier(classifierConfig(server.URL), testLogger())

	assert.Error(t, classifier.Load(context.Background()))
	assert.False(t, classifier.Ready())
}

func TestSnapshotSource(t *testing.T) {
	var status int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Resolution hints ride along on every capture
		assert.Equal(t, "640", r.URL.Query().Get("width"))
		assert.Equal(t, "480", r.URL.Query().Get("height"))

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Write([]byte("frame-bytes"))
	}))
	defer server.Close()

	source := NewSnapshotSource(server.URL, server.Client())
	defer source.Close()

	status = http.StatusOK
	frame, err := source.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("frame-bytes"), frame)

	status = http.StatusServiceUnavailable
	_, err = source.Next(context.Background())
	assert.ErrorIs(t, err, ErrFrameNotReady)

	status = http.StatusInternalServerError
	_, err = source.Next(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFrameNotReady)
}
