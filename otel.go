package fsm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// startTransitionSpan creates a span covering one state change (exit hook,
// bookkeeping, enter hook, notifications). Uses the global tracer provider;
// exporter wiring is the host's concern. The caller ends the span.
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startTransitionSpan(from, to, trigger, machine string) (context.Context, trace.Span) {
	tracer := otel.Tracer("fsm")

	ctx, span := tracer.Start(context.Background(), "fsm.transition")
	span.SetAttributes(
		attribute.String("machine", machine),
		attribute.String("from", from),
		attribute.String("to", to),
		attribute.String("trigger", trigger),
	)

	return ctx, span
}
