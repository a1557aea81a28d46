package views

import "testing"

func TestPaginatorCursorMovesPages(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(12)

	if p.TotalPages() != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages())
	}

	// Walk the cursor across the first page boundary
	for i := 0; i < 5; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 5 {
		t.Errorf("expected cursor 5, got %d", p.Cursor())
	}
	if p.CurrentPage() != 2 {
		t.Errorf("expected page 2 after crossing boundary, got %d", p.CurrentPage())
	}

	start, end := p.VisibleRange()
	if start != 5 || end != 10 {
		t.Errorf("expected visible range [5,10), got [%d,%d)", start, end)
	}
}

func TestPaginatorCursorStopsAtEnds(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(3)

	if p.CursorUp() {
		t.Error("expected CursorUp to fail at the top")
	}

	p.CursorDown()
	p.CursorDown()
	if p.CursorDown() {
		t.Error("expected CursorDown to fail at the bottom")
	}
	if p.Cursor() != 2 {
		t.Errorf("expected cursor 2, got %d", p.Cursor())
	}
}

func TestPaginatorNextPrevPage(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(12)

	if !p.NextPage() {
		t.Fatal("expected NextPage to succeed")
	}
	if start, _ := p.VisibleRange(); p.Cursor() != 5 || start != 5 {
		t.Errorf("expected cursor and page start 5, got %d and %d", p.Cursor(), start)
	}

	p.NextPage()
	if p.NextPage() {
		t.Error("expected NextPage to fail on the last page")
	}

	if !p.PrevPage() {
		t.Fatal("expected PrevPage to succeed")
	}
	if start, _ := p.VisibleRange(); start != 5 {
		t.Errorf("expected page start 5, got %d", start)
	}
}

func TestPaginatorSetTotalClampsCursor(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(12)
	for i := 0; i < 11; i++ {
		p.CursorDown()
	}

	p.SetTotal(4)
	if p.Cursor() != 3 {
		t.Errorf("expected cursor clamped to 3, got %d", p.Cursor())
	}
	if start, _ := p.VisibleRange(); start != 0 {
		t.Errorf("expected first page after clamp, got offset %d", start)
	}
}

func TestPaginatorReset(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(12)
	p.NextPage()

	p.Reset()
	start, _ := p.VisibleRange()
	if p.Cursor() != 0 || start != 0 || p.TotalPages() != 1 {
		t.Error("expected reset paginator to be empty and on the first page")
	}
}
