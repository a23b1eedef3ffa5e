// Package view derives what the directory page shows from the employee list and
// the transient UI state. Nothing here renders; every function is pure.
package view

import (
	"strings"

	"github.com/UnknownOlympus/employee-directory/internal/models"
)

// DefaultPageSize is the number of rows on one page unless configured otherwise.
const DefaultPageSize = 5

// ViewState is the search and pagination state of the directory page.
type ViewState struct {
	Query    string `json:"query"`
	Page     int    `json:"page"` // Page is 1-based.
	PageSize int    `json:"pageSize"`
}

// PageButton is one numbered pagination control.
type PageButton struct {
	Number int  `json:"number"`
	Active bool `json:"active"`
}

// Screen is everything needed to draw the list part of the page.
type Screen struct {
	State      ViewState         `json:"state"`
	Rows       []models.Employee `json:"rows"`
	Pages      []PageButton      `json:"pages"`
	TotalPages int               `json:"totalPages"`
	HasPrev    bool              `json:"hasPrev"`
	HasNext    bool              `json:"hasNext"`
	Filtered   int               `json:"filtered"`
	Total      int               `json:"total"`
}

// Filtered returns the records whose name contains query, ignoring case.
// Relative order is preserved and an empty query matches everything.
func Filtered(records []models.Employee, query string) []models.Employee {
	needle := strings.ToLower(query)
	result := make([]models.Employee, 0, len(records))

	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Name), needle) {
			result = append(result, record)
		}
	}

	return result
}

// PageOf returns the window [(page-1)*pageSize, page*pageSize) of filtered, clamped to
// its length. Pages outside the available range give an empty slice.
func PageOf(filtered []models.Employee, page, pageSize int) []models.Employee {
	// Bound page before multiplying so huge page numbers cannot overflow the offset.
	if page < 1 || pageSize < 1 || page > TotalPages(len(filtered), pageSize) {
		return []models.Employee{}
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(filtered))

	result := make([]models.Employee, end-start)
	copy(result, filtered[start:end])

	return result
}

// TotalPages is ceil(count/pageSize), never negative.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}

	pages := count / pageSize
	if count%pageSize != 0 {
		pages++
	}

	return pages
}

// Project is a pure function from the record list and state to the visible screen.
func Project(records []models.Employee, state ViewState) Screen {
	filtered := Filtered(records, state.Query)
	totalPages := TotalPages(len(filtered), state.PageSize)

	pages := make([]PageButton, 0, totalPages)
	for number := 1; number <= totalPages; number++ {
		pages = append(pages, PageButton{Number: number, Active: number == state.Page})
	}

	return Screen{
		State:      state,
		Rows:       PageOf(filtered, state.Page, state.PageSize),
		Pages:      pages,
		TotalPages: totalPages,
		HasPrev:    state.Page > 1,
		HasNext:    state.Page < totalPages,
		Filtered:   len(filtered),
		Total:      len(records),
	}
}

// Options tune the behaviour of a Projector.
type Options struct {
	PageSize int
	// ResetPageOnSearch jumps back to page 1 on every query change. Off by default, which
	// can leave the page beyond the narrowed result set.
	ResetPageOnSearch bool
}

// Projector owns the ViewState and applies user actions to it.
type Projector struct {
	state ViewState
	opts  Options
}

// NewProjector starts on page 1 with an empty query.
func NewProjector(opts Options) *Projector {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}

	return &Projector{
		state: ViewState{Query: "", Page: 1, PageSize: opts.PageSize},
		opts:  opts,
	}
}

// State returns a copy of the current state.
func (p *Projector) State() ViewState {
	return p.state
}

// SetQuery replaces the search string.
func (p *Projector) SetQuery(query string) {
	if p.opts.ResetPageOnSearch && query != p.state.Query {
		p.state.Page = 1
	}
	p.state.Query = query
}

// SetPage assigns the page as is; callers are trusted to pass a rendered page number.
func (p *Projector) SetPage(page int) {
	p.state.Page = page
}

// Prev moves one page back unless already on the first page.
func (p *Projector) Prev() {
	if p.state.Page > 1 {
		p.state.Page--
	}
}

// Next moves one page forward while a later page exists.
func (p *Projector) Next(records []models.Employee) {
	totalPages := TotalPages(len(Filtered(records, p.state.Query)), p.state.PageSize)
	if p.state.Page < totalPages {
		p.state.Page++
	}
}

// Project projects records through the current state.
func (p *Projector) Project(records []models.Employee) Screen {
	return Project(records, p.state)
}
