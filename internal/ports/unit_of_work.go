package ports

import "context"

// Tx is an opaque transaction handle. Infrastructure owns the concrete
// type (for example, *gorm.DB).
type Tx interface{}

// UnitOfWork brackets a transaction: the callback returning an error
// rolls back, returning nil commits. Repositories pick the handle up
// from the context the callback receives.
type UnitOfWork interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

func WithTxContext(ctx context.Context, tx Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func TxFromContext(ctx context.Context) Tx {
	return ctx.Value(txKey{})
}
