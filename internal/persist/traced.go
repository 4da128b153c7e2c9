package persist

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "panes-cli/persist"

// TracedStore records a span around every call to the wrapped store.
type TracedStore struct {
	inner  Store
	tracer trace.Tracer
}

// NewTracedStore wraps inner using the global tracer provider.
func NewTracedStore(inner Store) *TracedStore {
	return NewTracedStoreWithProvider(inner, otel.GetTracerProvider())
}

// NewTracedStoreWithProvider wraps inner using tracers from provider.
func NewTracedStoreWithProvider(inner Store, provider trace.TracerProvider) *TracedStore {
	return &TracedStore{inner: inner, tracer: provider.Tracer(tracerName)}
}

// Unwrap returns the wrapped store.
func (t *TracedStore) Unwrap() Store {
	return t.inner
}

func (t *TracedStore) Load(ctx context.Context, autoSaveID string) (SavedLayouts, error) {
	ctx, span := t.tracer.Start(ctx, "layout.load", trace.WithAttributes(
		attribute.String("panes.auto_save_id", autoSaveID),
	))
	defer span.End()

	layouts, err := t.inner.Load(ctx, autoSaveID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("panes.layout_count", len(layouts)))
	return layouts, nil
}

func (t *TracedStore) Save(ctx context.Context, autoSaveID string, layouts SavedLayouts) error {
	ctx, span := t.tracer.Start(ctx, "layout.save", trace.WithAttributes(
		attribute.String("panes.auto_save_id", autoSaveID),
		attribute.Int("panes.layout_count", len(layouts)),
	))
	defer span.End()

	if err := t.inner.Save(ctx, autoSaveID, layouts); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Delete forwards to the wrapped store when it supports deletion.
func (t *TracedStore) Delete(ctx context.Context, autoSaveID string) error {
	d, ok := t.inner.(Deleter)
	if !ok {
		return nil
	}

	ctx, span := t.tracer.Start(ctx, "layout.delete", trace.WithAttributes(
		attribute.String("panes.auto_save_id", autoSaveID),
	))
	defer span.End()

	if err := d.Delete(ctx, autoSaveID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
