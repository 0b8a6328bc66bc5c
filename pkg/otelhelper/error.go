package otelhelper

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrorKindKey classifies a failed span, e.g. "action_not_found".
const ErrorKindKey = "playbooks.error.kind"

// SetError marks span as failed and tags both the span and the recorded
// exception event with kind.
func SetError(span trace.Span, err error, kind string) {
	kindAttr := attribute.String(ErrorKindKey, kind)

	span.SetAttributes(kindAttr)
	span.RecordError(err, trace.WithAttributes(kindAttr))
	span.SetStatus(codes.Error, err.Error())
}
