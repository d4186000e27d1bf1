package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerDuration(t *testing.T) {
	timer := NewTimer()
	time.Sleep(20 * time.Millisecond)

	d := timer.Duration()
	if d < 20*time.Millisecond {
		t.Errorf("Timer.Duration() = %v, want >= 20ms", d)
	}
}

func TestTimerObserveDuration(t *testing.T) {
	h := prometheus.NewHistogram(prometheus.HistogramOpts{Name: "test_duration_seconds", Help: "test"})

	NewTimer().ObserveDuration(h)
	NewTimer().ObserveDuration(h)

	var m dto.Metric
	require.NoError(t, h.Write(&m))
	assert.Equal(t, uint64(2), m.GetHistogram().GetSampleCount())
}

func TestTimerObserveDurationVec(t *testing.T) {
	vec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "test_duration_vec_seconds", Help: "test"},
		[]string{"method"},
	)

	NewTimer().ObserveDurationVec(vec, "SendMessage")
	assert.Equal(t, 1, testutil.CollectAndCount(vec))
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(MessagesSent)
	MessagesSent.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(MessagesSent))

	ActivityTouches.WithLabelValues("ignored").Inc()
	assert.GreaterOrEqual(t, testutil.ToFloat64(ActivityTouches.WithLabelValues("ignored")), 1.0)
}

func TestRegisterActiveUsersAndHandler(t *testing.T) {
	require.NoError(t, RegisterActiveUsers(func() float64 { return 7 }))
	require.NoError(t, RegisterActiveUsers(func() float64 { return 9 }))

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "chat_active_users 7")
	assert.Contains(t, string(body), "chat_messages_sent_total")
}
