package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// useRecorder 安装内存Span记录器，测试结束后恢复原Provider
func useRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	prev := otel.GetTracerProvider()
	sr := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	return sr
}

func TestInitTracer_NoEndpoint(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), Config{ServiceName: "bookshop-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartSpan_ChildInheritsTraceID(t *testing.T) {
	sr := useRecorder(t)

	ctx, root := StartSpan(context.Background(), "test", "Root")
	_, child := StartSpan(ctx, "test", "Child")
	child.End()
	root.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "Child", spans[0].Name())
	assert.Equal(t, spans[1].SpanContext().TraceID(), spans[0].SpanContext().TraceID())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestEndSpan_RecordsError(t *testing.T) {
	sr := useRecorder(t)

	_, span := StartSpan(context.Background(), "test", "Failing")
	EndSpan(span, errors.New("rating store down"))

	_, ok := StartSpan(context.Background(), "test", "Ok")
	EndSpan(ok, nil)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "rating store down", spans[0].Status().Description)
	assert.Len(t, spans[0].Events(), 1, "应记录exception事件")
	assert.Equal(t, codes.Unset, spans[1].Status().Code)
}

func TestExtractIDs(t *testing.T) {
	useRecorder(t)

	assert.Empty(t, ExtractTraceID(context.Background()))
	assert.Empty(t, ExtractSpanID(context.Background()))

	ctx, span := StartSpan(context.Background(), "test", "Extract")
	defer span.End()

	assert.Len(t, ExtractTraceID(ctx), 32)
	assert.Len(t, ExtractSpanID(ctx), 16)
}
