package sqextralite

import (
	"context"
	"fmt"
)

func (d *Database) executeSelect(ctx context.Context, stmt Statement) (StatementResult, error) {
	return StatementResult{
		Columns: d.table.Columns,
		Rows:    d.table.Select(ctx),
	}, nil
}

// Select returns an iterator over all rows in insertion order. It sees
// rows inserted before the call only, calling Select again re-reads the table.
func (t *Table) Select(ctx context.Context) Iterator {
	t.mu.RLock()
	aCursor := t.Start(ctx)
	limit := t.numRows
	t.mu.RUnlock()

	t.logger.Sugar().With(
		"num_rows", int(limit),
	).Debug("scanning rows")

	return func(ctx context.Context) (Row, error) {
		if ctx.Err() != nil {
			return Row{}, fmt.Errorf("context done: %w", ctx.Err())
		}
		if aCursor.EndOfTable {
			return Row{}, ErrNoMoreRows
		}

		t.mu.RLock()
		if t.closed {
			t.mu.RUnlock()
			aCursor.EndOfTable = true
			return Row{}, ErrNoMoreRows
		}
		aRow, err := aCursor.fetchRow(ctx)
		t.mu.RUnlock()
		if err != nil {
			return Row{}, err
		}
		aCursor.Advance(limit)

		return aRow, nil
	}
}

// Rows returns all rows currently stored in the table
func (t *Table) Rows(ctx context.Context) ([]Row, error) {
	return StatementResult{Rows: t.Select(ctx)}.CollectRows(ctx)
}
