package sqextralite

import (
	"context"
	"fmt"
)

func (d *Database) executeInsert(ctx context.Context, stmt Statement) (StatementResult, error) {
	if err := d.table.Insert(ctx, stmt.RowToInsert); err != nil {
		return StatementResult{}, err
	}

	return StatementResult{RowsAffected: 1}, nil
}

// Insert appends a row at the end of the table. Table is left untouched
// when the row is rejected or the table is full.
func (t *Table) Insert(ctx context.Context, aRow Row) error {
	if err := aRow.Validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.numRows >= MaxRows {
		return fmt.Errorf("%w: %d rows", ErrTableFull, t.numRows)
	}

	aCursor := t.End(ctx)
	buf, err := aCursor.Value(ctx)
	if err != nil {
		return err
	}

	if err := aRow.Marshal(buf); err != nil {
		return err
	}
	t.numRows += 1

	t.logger.Sugar().With(
		"id", int(aRow.ID),
		"row_index", int(aCursor.RowIdx),
		"num_rows", int(t.numRows),
	).Debug("inserted row")

	return nil
}
