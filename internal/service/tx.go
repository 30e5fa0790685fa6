package service

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner runs a function inside a database transaction. Services depend on
// this interface rather than *gorm.DB directly so tests can substitute a
// runner that passes a nil handle straight through to fakes.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewTxRunner wraps a gorm handle as a TxRunner.
func NewTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
