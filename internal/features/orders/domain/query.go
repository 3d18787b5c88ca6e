package domain

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// YearAll disables the year filter.
const YearAll = "all"

var yearPattern = regexp.MustCompile(`20\d{2}`)

// OrderFilter holds the order history filters. Filters compose with AND.
type OrderFilter struct {
	// Year is a 4-digit year, or "" / "all" for every year.
	Year string `json:"year,omitempty"`
	// SearchTerm matches order number, status label or any item name, case-insensitively.
	SearchTerm string `json:"q,omitempty"`
}

// SortKey selects the order history sort.
type SortKey string

const (
	SortDateDesc  SortKey = "date_desc"
	SortDateAsc   SortKey = "date_asc"
	SortTotalDesc SortKey = "total_desc"
	SortTotalAsc  SortKey = "total_asc"
)

// Page describes one slice of a paginated result.
type Page struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalItems int  `json:"total_items"`
	NextPage   *int `json:"next_page,omitempty"`
	PrevPage   *int `json:"prev_page,omitempty"`
}

// ExtractYear finds the first 20xx year in a date string.
func ExtractYear(date string) (string, bool) {
	y := yearPattern.FindString(date)
	return y, y != ""
}

// Query returns deep copies of the orders matching f, preserving their relative order.
// The input is not modified.
func Query(orders []RawOrder, f OrderFilter) []RawOrder {
	year := strings.TrimSpace(f.Year)
	if strings.EqualFold(year, YearAll) {
		year = ""
	}
	term := fold(strings.TrimSpace(f.SearchTerm))

	out := make([]RawOrder, 0, len(orders))
	for _, o := range orders {
		if year != "" {
			y, ok := ExtractYear(o.Date)
			if !ok || y != year {
				continue
			}
		}
		if term != "" && !matchesTerm(o, term) {
			continue
		}
		out = append(out, *o.Clone())
	}
	return out
}

func matchesTerm(o RawOrder, term string) bool {
	if strings.Contains(fold(o.Number), term) {
		return true
	}
	if strings.Contains(fold(string(o.Status)), term) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(fold(item.Name), term) {
			return true
		}
	}
	return false
}

// fold builds a fresh Caser per call: a Caser must not be shared across goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}

var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
	time.RFC3339,
}

// ParseOrderDate parses the display date of an order.
func ParseOrderDate(date string) (time.Time, bool) {
	date = strings.TrimSpace(date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortOrders returns a sorted copy of orders. The sort is stable and unparseable
// dates go last regardless of direction. Unknown keys fall back to date_desc.
func SortOrders(orders []RawOrder, key SortKey) []RawOrder {
	sorted := append([]RawOrder(nil), orders...)

	switch key {
	case SortTotalAsc, SortTotalDesc:
		desc := key == SortTotalDesc
		sort.SliceStable(sorted, func(i, j int) bool {
			c := sorted[i].Totals.Total.Cmp(sorted[j].Totals.Total)
			if desc {
				return c > 0
			}
			return c < 0
		})
	default:
		desc := key != SortDateAsc
		sort.SliceStable(sorted, func(i, j int) bool {
			a, aok := ParseOrderDate(sorted[i].Date)
			b, bok := ParseOrderDate(sorted[j].Date)
			if aok != bok {
				return aok
			}
			if !aok {
				return false
			}
			if desc {
				return a.After(b)
			}
			return a.Before(b)
		})
	}
	return sorted
}

// ParseSortKey maps a request value to a SortKey, falling back to SortDateDesc.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortDateDesc, SortDateAsc, SortTotalDesc, SortTotalAsc:
		return k
	default:
		return SortDateDesc
	}
}

// PageInfo describes page of a result holding total items. Non-positive page and
// pageSize fall back to 1 and 10.
func PageInfo(total, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}

	p := Page{Page: page, PageSize: pageSize, TotalItems: total}
	if page < pageCount(total, pageSize) {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}

// Paginate slices orders for a 1-based page. Out-of-range pages are empty.
func Paginate(orders []RawOrder, page, pageSize int) ([]RawOrder, Page) {
	p := PageInfo(len(orders), page, pageSize)
	if p.Page > pageCount(p.TotalItems, p.PageSize) {
		return []RawOrder{}, p
	}

	start := (p.Page - 1) * p.PageSize
	end := start + min(p.PageSize, p.TotalItems-start)

	return append([]RawOrder(nil), orders[start:end]...), p
}

// pageCount is ceil(total/pageSize), computed without overflow.
func pageCount(total, pageSize int) int {
	n := total / pageSize
	if total%pageSize != 0 {
		n++
	}
	return n
}

// AvailableYears lists the distinct order years, newest first.
func AvailableYears(orders []RawOrder) []string {
	seen := map[string]bool{}
	var years []string
	for _, o := range orders {
		y, ok := ExtractYear(o.Date)
		if !ok || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool {
		a, _ := strconv.Atoi(years[i])
		b, _ := strconv.Atoi(years[j])
		return a > b
	})
	return years
}
