package observability

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Level(t *testing.T) {
	log, err := NewLogger("debug", "production")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = NewLogger("nonsense", "development")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel), "unknown level falls back to info")
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestInitTracing_None(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{Exporter: ExporterNone})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracing_UnknownExporter(t *testing.T) {
	_, err := InitTracing(context.Background(), TracingConfig{Exporter: "zipkin"})
	assert.ErrorContains(t, err, "zipkin")
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.MediaRemoval("removed")
	m.MediaRemoval("removed")
	m.MediaRemoval("failed")
	m.EnquiryReceived("website")
	m.OrphansExhausted(3)
	m.OTPsPurged(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MediaRemovals.WithLabelValues("removed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MediaRemovals.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EnquiriesReceived.WithLabelValues("website")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ExhaustedOrphans))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.PurgedOTPs))
}
