package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	t.Run("set_and_get_round_trip", func(t *testing.T) {
		ctx := SetTraceID(context.Background())

		traceID := GetTraceID(ctx)
		assert.Len(t, traceID, TraceIDLength*2) // hex-encoded
	})

	t.Run("missing_trace_id_is_empty", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
	})

	t.Run("ids_are_unique", func(t *testing.T) {
		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})
}
