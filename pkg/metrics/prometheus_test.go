package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.RecordRequest("GET", "/predict", 200, 10*time.Millisecond)
	r.RecordRequest("GET", "/predict", 200, 20*time.Millisecond)
	r.RecordOracleCall(time.Millisecond, nil)
	r.RecordOracleCall(time.Millisecond, errors.New("boom"))
	r.RecordSignal()
	r.RecordSubscription("price-alert")

	assert.Equal(t, float64(2), testutil.ToFloat64(r.requestsTotal.WithLabelValues("GET", "/predict", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.oracleCalls.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.oracleCalls.WithLabelValues("error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.signalsAcknowledged))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.subscriptionsCreated.WithLabelValues("price-alert")))
}
