package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBar_Finish(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(&buf, "sieving", 10)

	b.Add(3)
	b.Add(7)
	b.Finish()

	out := buf.String()
	assert.Contains(t, out, "sieving")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "10/10")
}

func TestBar_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(&buf, "noop", 0)

	b.Add(1)
	b.Finish()
	// No bar is rendered for zero work, only the terminating newline.
	assert.Equal(t, "\n", buf.String())
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "500/s", formatRate(500))
	assert.Equal(t, "2.5K/s", formatRate(2500))
	assert.Equal(t, "1.2M/s", formatRate(1_200_000))
}

func TestFormatETA(t *testing.T) {
	assert.Equal(t, "0s", formatETA(0, 100))
	assert.Equal(t, "0s", formatETA(100, 0))
	assert.Equal(t, "5s", formatETA(500, 100))
	assert.Equal(t, "1m40s", formatETA(10_000, 100))
	assert.Equal(t, "2h46m", formatETA(1_000_000, 100))
}
