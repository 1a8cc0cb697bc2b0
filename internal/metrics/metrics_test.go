package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Counters(t *testing.T) {
	t.Parallel()

	m := New(nil, nil)

	m.VideosUploaded.Inc()
	m.CommentsCreated.Add(2)
	m.RequestsTotal.WithLabelValues("GET", "/api/videos", "200").Inc()
	m.EventsPublished.WithLabelValues("video.uploaded", "ok").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.VideosUploaded))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CommentsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/videos", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("video.uploaded", "ok")))
}

func TestNew_InstancesAreIndependent(t *testing.T) {
	t.Parallel()

	a := New(nil, nil)
	b := New(nil, nil)

	a.VideosUploaded.Inc()

	assert.Equal(t, 0.0, testutil.ToFloat64(b.VideosUploaded))
}

func TestHandler_ExposesGauges(t *testing.T) {
	t.Parallel()

	videos, comments := 5, 4
	m := New(func() int { return videos }, func() int { return comments })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "video_api_videos 5")
	assert.Contains(t, body, "video_api_comments 4")
	assert.Contains(t, body, "go_goroutines")
}
