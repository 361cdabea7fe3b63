package sievego

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCollector(reg)

	c.RecordGenerate(ModeSegmented, 78498, 250*time.Millisecond, nil)
	c.RecordGenerate(ModeClassic, 0, time.Millisecond, errors.New("boom"))
	c.RecordSegments(100)
	c.RecordFallback(errors.New("dispatch failed"))

	assert.Equal(t, float64(1), testutil.ToFloat64(c.generates.WithLabelValues("segmented")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.generates.WithLabelValues("classic")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.errors))
	assert.Equal(t, float64(78498), testutil.ToFloat64(c.primes))
	assert.Equal(t, float64(100), testutil.ToFloat64(c.segments))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.fallbacks))
}
