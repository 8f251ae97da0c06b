package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

const pqQueryCanceled = "57014"

// QueryRunner executes already validated read-only statements inside a
// read-only transaction with a statement deadline.
type QueryRunner struct {
	db             *sqlx.DB
	acquireTimeout time.Duration
	queryTimeout   time.Duration
}

func NewQueryRunner(db *sqlx.DB, acquireTimeout, queryTimeout time.Duration) *QueryRunner {
	if acquireTimeout <= 0 {
		acquireTimeout = 3 * time.Second
	}
	if queryTimeout <= 0 {
		queryTimeout = 15 * time.Second
	}

	return &QueryRunner{db: db, acquireTimeout: acquireTimeout, queryTimeout: queryTimeout}
}

func (r *QueryRunner) Run(ctx context.Context, query string) ([]map[string]any, error) {
	acquireCtx, cancelAcquire := context.WithTimeout(ctx, r.acquireTimeout)
	defer cancelAcquire()

	conn, err := r.db.Connx(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: no database connection available within %s", usecase.ErrPoolExhausted, r.acquireTimeout)
		}
		return nil, fmt.Errorf("%w: acquire connection: %v", usecase.ErrExecution, err)
	}
	defer conn.Close()

	queryCtx, cancelQuery := context.WithTimeout(ctx, r.queryTimeout)
	defer cancelQuery()

	tx, err := conn.BeginTxx(queryCtx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, classifyRunError(queryCtx, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rows, err := tx.QueryxContext(queryCtx, query)
	if err != nil {
		return nil, classifyRunError(queryCtx, err)
	}
	defer rows.Close()

	out := make([]map[string]any, 0, 32)
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, classifyRunError(queryCtx, err)
		}
		for key, value := range row {
			if b, ok := value.([]byte); ok {
				row[key] = string(b)
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyRunError(queryCtx, err)
	}

	return out, nil
}

func classifyRunError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: statement exceeded deadline", usecase.ErrQueryTimeout)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqQueryCanceled {
		return fmt.Errorf("%w: statement canceled", usecase.ErrQueryTimeout)
	}

	return fmt.Errorf("%w: %v", usecase.ErrExecution, err)
}
