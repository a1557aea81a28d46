package views

// Paginator tracks a cursor over a paged list. The cursor is an absolute
// index; the visible page follows it.
type Paginator struct {
	pageSize int
	page     int // 0-based
	cursor   int
	total    int
}

// NewPaginator creates a paginator with the given page size
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetTotal sets the item count, clamping the cursor into the new bounds
func (p *Paginator) SetTotal(total int) {
	p.total = total
	switch {
	case total == 0:
		p.cursor = 0
	case p.cursor >= total:
		p.cursor = total - 1
	}
	p.follow()
}

// Cursor returns the absolute cursor index
func (p *Paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves the cursor up by one, reporting whether it moved
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.follow()
	return true
}

// CursorDown moves the cursor down by one, reporting whether it moved
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.cursor++
	p.follow()
	return true
}

// VisibleRange returns the half-open index range of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.page * p.pageSize
	end = min(start+p.pageSize, p.total)
	return
}

// TotalPages returns the page count, at least 1
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the 1-based page number
func (p *Paginator) CurrentPage() int {
	return p.page + 1
}

// NextPage jumps to the top of the next page
func (p *Paginator) NextPage() bool {
	if p.page+1 >= p.TotalPages() || p.total == 0 {
		return false
	}
	p.page++
	p.cursor = p.page * p.pageSize
	return true
}

// PrevPage jumps to the top of the previous page
func (p *Paginator) PrevPage() bool {
	if p.page == 0 {
		return false
	}
	p.page--
	p.cursor = p.page * p.pageSize
	return true
}

// Reset returns the paginator to an empty list
func (p *Paginator) Reset() {
	p.page = 0
	p.cursor = 0
	p.total = 0
}

// follow moves the page to wherever the cursor is
func (p *Paginator) follow() {
	p.page = p.cursor / p.pageSize
}
