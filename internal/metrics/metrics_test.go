package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	r.RefundRequested("booking", "refunded")
	r.RefundRequested("booking", "refunded")
	r.RefundRequested("withdrawal", "no_refund")
	r.RateLimited("/api/v1/bookings")
	r.WaitlistPromoted(2)
	r.WaitlistPromoted(0)
	r.RefundIssued("booking", 15000)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.refundRequests.WithLabelValues("booking", "refunded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.refundRequests.WithLabelValues("withdrawal", "no_refund")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rateLimited.WithLabelValues("/api/v1/bookings")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.waitlistPromotions))
	assert.Equal(t, 1, testutil.CollectAndCount(r.refundAmount))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())
	r.RefundRequested("booking", "refunded")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `eventbook_refund_requests_total{result="refunded",source="booking"} 1`)
}
