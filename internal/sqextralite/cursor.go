package sqextralite

import (
	"context"
	"fmt"
)

// SlotFor maps a logical row index to its page and byte offset within the page
func SlotFor(rowIdx uint32) (PageIndex, uint32) {
	return PageIndex(rowIdx / RowsPerPage), (rowIdx % RowsPerPage) * RowSize
}

type Cursor struct {
	Table      *Table
	RowIdx     uint32
	EndOfTable bool
}

// Value returns the slot of the row under the cursor, allocating
// its page on first touch
func (c *Cursor) Value(ctx context.Context) ([]byte, error) {
	pageIdx, offset := SlotFor(c.RowIdx)
	if pageIdx >= MaxPages {
		return nil, fmt.Errorf("%w: row %d maps to page %d", ErrPageIndexOutOfRange, c.RowIdx, pageIdx)
	}

	aPage, err := c.Table.pager.GetPage(ctx, pageIdx)
	if err != nil {
		return nil, err
	}

	return aPage.RowSlot(offset), nil
}

func (c *Cursor) fetchRow(ctx context.Context) (Row, error) {
	buf, err := c.Value(ctx)
	if err != nil {
		return Row{}, err
	}

	var aRow Row
	if err := UnmarshalRow(buf, &aRow); err != nil {
		return Row{}, err
	}

	return aRow, nil
}

// Advance moves the cursor to the next row, limit is the number of rows
// visible to the cursor
func (c *Cursor) Advance(limit uint32) {
	c.RowIdx += 1
	if c.RowIdx >= limit {
		c.EndOfTable = true
	}
}
