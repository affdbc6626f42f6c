package sqextralite

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Table struct {
	Name    string
	Columns []Column
	pager   Pager
	numRows uint32
	closed  bool
	logger  *zap.Logger

	mu sync.RWMutex
}

// NewTable creates an empty table backed by the given pager
func NewTable(logger *zap.Logger, name string, aPager Pager) *Table {
	return &Table{
		Name:    name,
		Columns: Columns,
		pager:   aPager,
		logger:  logger,
	}
}

func (t *Table) NumRows() uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.numRows
}

// TotalPages returns number of pages allocated for the table so far
func (t *Table) TotalPages() uint32 {
	return t.pager.TotalPages()
}

// Start returns a cursor pointing to the first row
func (t *Table) Start(ctx context.Context) *Cursor {
	return &Cursor{
		Table:      t,
		RowIdx:     0,
		EndOfTable: t.numRows == 0,
	}
}

// End returns a cursor pointing one past the last row, which is where
// the next row gets appended
func (t *Table) End(ctx context.Context) *Cursor {
	return &Cursor{
		Table:      t,
		RowIdx:     t.numRows,
		EndOfTable: true,
	}
}

// Close releases all pages of the table. Iterators obtained before
// Close stop yielding rows.
func (t *Table) Close(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.numRows = 0
	return t.pager.Close()
}
