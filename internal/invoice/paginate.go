package invoice

import "senthur/internal/domain"

const (
	// FirstPageCapacity is smaller because the first page carries the letterhead.
	FirstPageCapacity        = 12
	ContinuationPageCapacity = 14
)

// Page is one printed sheet worth of line items. StartIndex is the 0-based
// offset of Items[0] in the full item list.
type Page struct {
	Items      []domain.OrderItem
	StartIndex int
	IsLast     bool
}

// SequenceNumber returns the 1-based invoice line number of Items[i].
func (p Page) SequenceNumber(i int) int {
	return p.StartIndex + i + 1
}

// Paginate splits items into pages. It always returns at least one page, and
// only the final page is marked IsLast.
func Paginate(items []domain.OrderItem) []Page {
	var pages []Page

	first := min(len(items), FirstPageCapacity)
	pages = append(pages, Page{Items: items[:first:first], StartIndex: 0})

	for start := first; start < len(items); start += ContinuationPageCapacity {
		end := min(start+ContinuationPageCapacity, len(items))
		pages = append(pages, Page{Items: items[start:end:end], StartIndex: start})
	}

	pages[len(pages)-1].IsLast = true
	return pages
}
