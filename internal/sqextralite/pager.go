package sqextralite

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type pagerImpl struct {
	logger   *zap.Logger
	maxPages uint32

	// pages is a sparse array where index = PageIndex,
	// nil entries are pages that have not been touched yet
	pages      []*Page
	totalPages uint32 // number of allocated pages
	closed     bool

	mu sync.RWMutex
}

// NewPager returns an in-memory pager that allocates pages on first use
// and never holds more than maxPages of them
func NewPager(logger *zap.Logger, maxPages uint32) *pagerImpl {
	return &pagerImpl{
		logger:   logger,
		maxPages: maxPages,
		pages:    make([]*Page, 0, maxPages),
	}
}

func (p *pagerImpl) TotalPages() uint32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.totalPages
}

func (p *pagerImpl) GetPage(ctx context.Context, pageIdx PageIndex) (*Page, error) {
	if uint32(pageIdx) >= p.maxPages {
		return nil, fmt.Errorf("%w: page %d, max pages %d", ErrPageIndexOutOfRange, pageIdx, p.maxPages)
	}

	// Check if page already exists
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil, ErrPagerClosed
	}
	if len(p.pages) > int(pageIdx) && p.pages[pageIdx] != nil {
		aPage := p.pages[pageIdx]
		p.mu.RUnlock()
		return aPage, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPagerClosed
	}

	// Double-check page doesn't exist (in case another goroutine created it)
	if len(p.pages) > int(pageIdx) && p.pages[pageIdx] != nil {
		return p.pages[pageIdx], nil
	}

	// Extend sparse array with nil entries to accommodate pageIdx
	for i := len(p.pages); i < int(pageIdx)+1; i++ {
		p.pages = append(p.pages, nil)
	}

	p.pages[pageIdx] = NewPage(pageIdx)
	p.totalPages += 1

	p.logger.Sugar().With(
		"page_index", int(pageIdx),
		"total_pages", int(p.totalPages),
	).Debug("allocated page")

	return p.pages[pageIdx], nil
}

// Close releases all pages, the pager cannot be used afterwards
func (p *pagerImpl) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.pages = nil
	p.totalPages = 0

	return nil
}
