package sqextralite

const (
	PageSize = 4096 // 4 kilobytes
	MaxPages = 100

	RowsPerPage = PageSize / RowSize
	MaxRows     = RowsPerPage * MaxPages
)

type PageIndex uint32

// Page holds RowsPerPage packed rows, bytes after the last row are unused
type Page struct {
	Index PageIndex
	Data  []byte
}

func NewPage(pageIdx PageIndex) *Page {
	return &Page{
		Index: pageIdx,
		Data:  make([]byte, PageSize),
	}
}

// RowSlot returns the RowSize bytes starting at offset
func (p *Page) RowSlot(offset uint32) []byte {
	return p.Data[offset : offset+RowSize : offset+RowSize]
}
