package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/caninecompadre/booking-service/pkg/dbmetrics"
	"github.com/caninecompadre/booking-service/pkg/txmanager"
)

// sqlBeginner adapts *sql.DB to the txmanager.TxBeginner interface. *sql.Tx
// already satisfies dbmetrics.TxExecutor.
type sqlBeginner struct {
	db *sql.DB
}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// NewTransactionManager creates a transaction manager over a plain *sql.DB,
// for deployments with metrics disabled.
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(sqlBeginner{db: db})
}
