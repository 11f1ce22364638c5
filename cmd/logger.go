package cmd

import (
	"context"
	"log/slog"
	"os"
)

type traceKey struct{}

// WithTrace tags a context so every log record emitted under it carries the
// trace value.
func WithTrace(ctx context.Context, trace string) context.Context {
	return context.WithValue(ctx, traceKey{}, trace)
}

type TraceHandler struct {
	slog.Handler
}

func (h *TraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if v := ctx.Value(traceKey{}); v != nil {
		r.Add("trace", v)
	}
	return h.Handler.Handle(ctx, r)
}

func InitLoggers(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(&TraceHandler{handler}))
}
