package ingestion

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressTracker_Basic(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10)

	tracker.Start()
	assert.True(t, tracker.started, "should be started")

	tracker.Increment(25)
	tracker.Increment(25)

	elapsed := tracker.Elapsed()
	assert.Greater(t, elapsed, time.Duration(0), "elapsed time should be positive")

	output := buf.String()
	assert.Contains(t, output, "Loaded:", "should report loaded count")
	assert.Contains(t, output, "50", "should show running count")
}

func TestProgressTracker_Finish(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10)

	tracker.Start()
	tracker.Increment(7)
	tracker.Finish()

	output := buf.String()
	assert.Contains(t, output, "7", "finish should show the final count")
	assert.Contains(t, output, "\n", "finish should print newline")
}

func TestProgressTracker_Rate(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100)

	tracker.Start()
	time.Sleep(10 * time.Millisecond)
	tracker.Increment(100)
	tracker.Finish()

	output := buf.String()
	assert.Contains(t, output, "/s", "should show rate")
}

func TestProgressTracker_NotStarted(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10)

	// Should not panic when not started
	tracker.Increment(10)
	tracker.Finish()

	assert.Equal(t, "", buf.String(), "should have no output when not started")
}

func TestProgressTracker_ReportInterval(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100)

	tracker.Start()

	// Under interval, no output yet
	tracker.Increment(50)
	assert.Equal(t, "", buf.String(), "should not print under interval")

	// Crossing the interval prints
	tracker.Increment(50)
	assert.True(t, len(buf.String()) > 0, "should print at interval")
}

func TestLoadWithProgress(t *testing.T) {
	repo := newTestRepository(t)

	var buf bytes.Buffer
	pipeline, err := NewPipeline(repo, WithProgress(&buf, 1))
	require.NoError(t, err)
	defer pipeline.Release()

	input := "first sentence\nsecond sentence\nthird sentence\n"
	stats, err := pipeline.Load(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Inserted)

	output := buf.String()
	assert.Contains(t, output, "Loaded:", "should report progress during load")
	assert.Contains(t, output, "3", "should reach the final count")
}
