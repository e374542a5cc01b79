package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine matches a metric line by name, partial label pattern and value.
// The Prometheus exporter adds otel scope labels, hence the regex.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestBusinessMetrics_Export(t *testing.T) {
	provider, err := NewProvider("signup_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "signup_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "participant", "participant_register", StatusSuccess)
	bm.RecordOperation(ctx, "participant", "participant_register", StatusSuccess)
	bm.RecordOperation(ctx, "participant", "participant_register", StatusError)
	bm.RecordOperation(ctx, "token", "token_generate", StatusSuccess)
	bm.RecordDuration(ctx, "participant", "participant_register", 50*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "participant", "participant_register", 70*time.Millisecond, StatusSuccess)

	output := scrape(t, provider)

	assertMetricLine(t, output, `signup_test_operations_total`,
		`domain="participant".*operation="participant_register".*status="success"`, `2`)
	assertMetricLine(t, output, `signup_test_operations_total`,
		`domain="participant".*operation="participant_register".*status="error"`, `1`)
	assertMetricLine(t, output, `signup_test_operations_total`,
		`domain="token".*operation="token_generate".*status="success"`, `1`)
	assertMetricLine(t, output, `signup_test_operation_duration_seconds_count`,
		`domain="participant".*operation="participant_register".*status="success"`, `2`)
	assertMetricLine(t, output, `signup_test_operation_duration_seconds_bucket`,
		`domain="participant".*le="0.1".*`, `2`)
}

func TestObserve(t *testing.T) {
	provider, err := NewProvider("observe_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "observe_test")
	require.NoError(t, err)

	ctx := context.Background()
	Observe(ctx, bm, "payment", "payment_qr", time.Now(), nil)
	Observe(ctx, bm, "payment", "payment_qr", time.Now(), errors.New("render failed"))

	output := scrape(t, provider)
	assertMetricLine(t, output, `observe_test_operations_total`,
		`domain="payment".*operation="payment_qr".*status="success"`, `1`)
	assertMetricLine(t, output, `observe_test_operations_total`,
		`domain="payment".*operation="payment_qr".*status="error"`, `1`)
	assertMetricLine(t, output, `observe_test_operation_duration_seconds_count`,
		`domain="payment".*operation="payment_qr".*status="error"`, `1`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	noOp := NewNoOpBusinessMetrics()

	assert.NotPanics(t, func() {
		noOp.RecordOperation(context.Background(), "participant", "participant_register", StatusSuccess)
		noOp.RecordDuration(context.Background(), "token", "token_validate", time.Second, StatusError)
		Observe(context.Background(), noOp, "outbox", "participant.registered", time.Now(), nil)
	})
}
