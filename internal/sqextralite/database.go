package sqextralite

import (
	"context"

	"go.uber.org/zap"
)

const DefaultTableName = "users"

type Database struct {
	Name   string
	parser Parser
	table  *Table
	logger *zap.Logger
}

// NewDatabase creates a new database holding a single empty table
func NewDatabase(ctx context.Context, logger *zap.Logger, name string, aParser Parser, aPager Pager) (*Database, error) {
	aDatabase := &Database{
		Name:   name,
		parser: aParser,
		logger: logger,
		table:  NewTable(logger, DefaultTableName, aPager),
	}

	logger.Sugar().With(
		"name", name,
		"row_size", RowSize,
		"rows_per_page", RowsPerPage,
		"max_rows", MaxRows,
	).Debug("created database")

	return aDatabase, nil
}

func (d *Database) Table() *Table {
	return d.table
}

// Close destroys the table and releases its pages
func (d *Database) Close(ctx context.Context) error {
	d.logger.Sugar().With(
		"name", d.Name,
		"num_rows", int(d.table.NumRows()),
		"total_pages", int(d.table.TotalPages()),
	).Debug("closing database")

	return d.table.Close(ctx)
}

type Stats struct {
	NumRows    uint32
	TotalPages uint32
	MaxRows    uint32
	MaxPages   uint32
}

func (d *Database) Stats() Stats {
	return Stats{
		NumRows:    d.table.NumRows(),
		TotalPages: d.table.TotalPages(),
		MaxRows:    MaxRows,
		MaxPages:   MaxPages,
	}
}

// PrepareStatement parses input into a Statement struct
func (d *Database) PrepareStatement(ctx context.Context, input string) (Statement, error) {
	stmt, err := d.parser.Parse(ctx, input)
	if err != nil {
		return Statement{}, err
	}
	return stmt, nil
}

// ExecuteStatement will eventually become virtual machine
func (d *Database) ExecuteStatement(ctx context.Context, stmt Statement) (StatementResult, error) {
	switch stmt.Kind {
	case Insert:
		return d.executeInsert(ctx, stmt)
	case Select:
		return d.executeSelect(ctx, stmt)
	}
	return StatementResult{}, errUnrecognizedStatementType
}
