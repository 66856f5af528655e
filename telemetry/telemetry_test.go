package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoOpCollectorProducesNoOutput(t *testing.T) {
	collector := noOpCollector{}

	timer := collector.Start("test")
	child := timer.Child("child")
	child.End()
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf)
	assert.Equal(t, 0, buf.Len())
}

func TestFromContextReturnsNoOpWhenMissing(t *testing.T) {
	collector := FromContext(context.Background())
	require := assert.New(t)
	require.NotNil(collector)
	_, ok := collector.(noOpCollector)
	require.True(ok)
}

func TestWithCollectorRoundTrips(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	retrieved, ok := FromContext(ctx).(*TimingCollector)
	assert.True(t, ok)
	assert.Same(t, collector, retrieved)
}

func TestTimingCollectorBasicReport(t *testing.T) {
	collector := NewTimingCollector()

	timer := collector.Start("lex+parse")
	time.Sleep(time.Millisecond)
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf)
	output := buf.String()

	assert.Contains(t, output, "lex+parse")
	assert.Contains(t, output, "ms")
}

func TestTimingCollectorHierarchicalReport(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("check")
	child := root.Child("lex+parse")
	child.End()
	child2 := root.Child("render")
	child2.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf)
	output := buf.String()

	assert.Contains(t, output, "check")
	assert.Contains(t, output, "lex+parse")
	assert.Contains(t, output, "render")
	assert.True(t, strings.Contains(output, "├─") || strings.Contains(output, "└─"))
}

func TestTimingCollectorEmptyReportProducesNoOutput(t *testing.T) {
	collector := NewTimingCollector()

	var buf bytes.Buffer
	collector.Report(&buf)
	assert.Equal(t, 0, buf.Len())
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{100 * time.Microsecond, "100µs"},
		{999 * time.Microsecond, "999µs"},
		{1 * time.Millisecond, "1ms"},
		{250 * time.Millisecond, "250ms"},
		{1 * time.Second, "1.00s"},
		{1500 * time.Millisecond, "1.50s"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatDuration(c.d))
	}
}
