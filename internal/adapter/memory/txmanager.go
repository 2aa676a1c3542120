package memory

import "context"

// TxManager runs fn directly. Each store call is individually atomic, which
// is all the memory driver guarantees.
type TxManager struct{}

// RunInTx calls fn with ctx unchanged.
func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Pinger reports the memory store as always reachable.
type Pinger struct{}

// Ping always succeeds.
func (Pinger) Ping(context.Context) error { return nil }
