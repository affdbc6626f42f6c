package sqextralite

import (
	"errors"
	"fmt"
)

var (
	ErrTableFull           = errors.New("table full")
	ErrRowTooLong          = errors.New("row too long")
	ErrInvalidString       = errors.New("invalid string")
	ErrPageIndexOutOfRange = errors.New("page index out of range")
	ErrNoMoreRows          = errors.New("no more rows")
	ErrPagerClosed         = errors.New("pager closed")

	errUnrecognizedStatementType = fmt.Errorf("unrecognised statement type")
)

type ColumnKind int

const (
	Int4 ColumnKind = iota + 1
	Varchar
)

type Column struct {
	Kind ColumnKind
	Size int
	Name string
}

// Columns describes the fixed schema of the only table
var Columns = []Column{
	{
		Kind: Int4,
		Size: IDSize,
		Name: "id",
	},
	{
		Kind: Varchar,
		Size: UsernameSize,
		Name: "username",
	},
	{
		Kind: Varchar,
		Size: EmailSize,
		Name: "email",
	},
}
