package recovery

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/recoverywallet/internal/recovery"

// instruments holds the counters recorded for every wallet operation.
type instruments struct {
	tracer     trace.Tracer
	operations metric.Int64Counter
	rejections metric.Int64Counter
}

// newInstruments binds to the global providers, which are no-ops until
// telemetry.Init registers real ones.
func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	// Instrument creation only fails on invalid names; the returned
	// counters are usable no-ops in that case.
	operations, _ := meter.Int64Counter("recoverywallet.operations",
		metric.WithDescription("Wallet operations that changed state"),
	)
	rejections, _ := meter.Int64Counter("recoverywallet.rejections",
		metric.WithDescription("Wallet operations rejected, by reason"),
	)

	return instruments{
		tracer:     otel.Tracer(instrumentationName),
		operations: operations,
		rejections: rejections,
	}
}

// start opens a span for operation. The returned func ends it and records the
// outcome carried by *errp.
func (in instruments) start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(errp *error)) {
	ctx, span := in.tracer.Start(ctx, "recovery."+operation, trace.WithAttributes(attrs...))

	return ctx, func(errp *error) {
		defer span.End()

		op := attribute.String("operation", operation)
		if errp == nil || *errp == nil {
			in.operations.Add(ctx, 1, metric.WithAttributes(op))
			return
		}

		reason := Reason(*errp)
		span.RecordError(*errp)
		span.SetStatus(codes.Error, reason)
		in.rejections.Add(ctx, 1, metric.WithAttributes(op, attribute.String("reason", reason)))
	}
}
