package audit

import (
	"context"
	"time"
)

// StorePublisher captures structured audit events through the storage layer
// so tests and single-node deployments can swap sinks easily. Production
// wiring uses the Kafka publisher instead.
type StorePublisher struct {
	store Store
}

func NewStorePublisher(store Store) *StorePublisher {
	return &StorePublisher{store: store}
}

func (p *StorePublisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return p.store.Append(ctx, event)
}
