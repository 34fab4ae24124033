package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/pargraph/bfs"
	"github.com/katalvlaran/pargraph/builder"
)

// TestBFS_Span checks the span recorded around a wrapper run.
func TestBFS_Span(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	g := mustBuild(t, nil, builder.Path(4))
	_, err := bfs.Hybrid(g, 1, bfs.WithWorkers(2), bfs.WithContext(context.Background()))
	require.NoError(t, err)

	var found bool
	for _, s := range rec.Ended() {
		if s.Name() != "bfs.Hybrid" {
			continue
		}
		found = true
		assert.Equal(t, codes.Ok, s.Status().Code)
		attrs := map[attribute.Key]attribute.Value{}
		for _, kv := range s.Attributes() {
			attrs[kv.Key] = kv.Value
		}
		assert.Equal(t, int64(4), attrs["vertices"].AsInt64())
		assert.Equal(t, int64(2), attrs["workers"].AsInt64())
		assert.Equal(t, int64(4), attrs["reached"].AsInt64())
		// eccentricity 3, two levels per merge
		assert.Equal(t, int64(2), attrs["rounds"].AsInt64())
	}
	assert.True(t, found, "bfs.Hybrid span not recorded")
}
