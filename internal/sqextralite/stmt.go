package sqextralite

import (
	"context"
	"errors"
)

type StatementKind int

const (
	Insert StatementKind = iota + 1
	Select
)

func (s StatementKind) String() string {
	switch s {
	case Insert:
		return "INSERT"
	case Select:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

type Statement struct {
	Kind        StatementKind
	RowToInsert Row // used for INSERT
}

// Iterator returns rows one at a time and ErrNoMoreRows once exhausted
type Iterator func(ctx context.Context) (Row, error)

type StatementResult struct {
	Columns      []Column
	Rows         Iterator
	RowsAffected int
}

// CollectRows drains the result's iterator
func (r StatementResult) CollectRows(ctx context.Context) ([]Row, error) {
	if r.Rows == nil {
		return nil, nil
	}
	var rows []Row
	for {
		aRow, err := r.Rows(ctx)
		if errors.Is(err, ErrNoMoreRows) {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, aRow)
	}
}
