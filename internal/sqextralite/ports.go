package sqextralite

import (
	"context"
)

type Parser interface {
	Parse(context.Context, string) (Statement, error)
}

type Pager interface {
	GetPage(context.Context, PageIndex) (*Page, error)
	TotalPages() uint32
	Close() error
}
