package reservation

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-TramitesService/pkg/dbmetrics"
)

// Reuse the dbmetrics query interfaces so the repository works against
// *sql.DB, *dbmetrics.DB and open transactions alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions; implemented by *sql.DB and *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
