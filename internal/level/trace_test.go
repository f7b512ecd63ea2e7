package level

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestGenerateRecordsSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	g := newGenerator(t, DefaultOptions(), 2024)
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	var generate sdktrace.ReadOnlySpan
	attempts := 0
	for _, s := range recorder.Ended() {
		switch s.Name() {
		case "level.generate":
			generate = s
		case "level.attempt":
			attempts++
		}
	}
	require.NotNil(t, generate)
	assert.Equal(t, g.Attempts(), attempts)

	attrs := map[string]int64{}
	for _, kv := range generate.Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInt64()
	}
	assert.Equal(t, int64(len(g.Rooms())), attrs["level.room_count"])
	assert.Equal(t, int64(DefaultWidth), attrs["level.width"])
}
