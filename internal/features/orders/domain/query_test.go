package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyFixture() []RawOrder {
	return []RawOrder{
		{Number: "ORD-1", Status: OrderStatusDelivered, Date: "Sep 15, 2024",
			Totals: Totals{Total: decimal.NewFromInt(40)},
			Items:  []LineItem{{Name: "Trail Runner"}}},
		{Number: "ORD-2", Status: OrderStatusInTransit, Date: "Mar 2, 2023",
			Totals: Totals{Total: decimal.NewFromInt(90)},
			Items:  []LineItem{{Name: "Rain Shell"}}},
		{Number: "ORD-3", Status: OrderStatusCancelled, Date: "sometime soon",
			Totals: Totals{Total: decimal.NewFromInt(15)},
			Items:  []LineItem{{Name: "Water Bottle"}}},
		{Number: "ORD-4", Status: OrderStatusPickedUp, Date: "2024-01-20",
			Totals: Totals{Total: decimal.NewFromInt(60)},
			Items:  []LineItem{{Name: "Headlamp"}, {Name: "Batteries"}}},
	}
}

func numbers(orders []RawOrder) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Number)
	}
	return out
}

func TestExtractYear(t *testing.T) {
	y, ok := ExtractYear("Sep 15, 2024")
	assert.True(t, ok)
	assert.Equal(t, "2024", y)

	_, ok = ExtractYear("Sep 15, 1999")
	assert.False(t, ok)

	_, ok = ExtractYear("")
	assert.False(t, ok)
}

func TestQuery_Year(t *testing.T) {
	orders := []RawOrder{
		{Number: "A", Date: "Sep 15, 2024"},
		{Number: "B", Date: "Mar 2, 2023"},
	}

	assert.Equal(t, []string{"A"}, numbers(Query(orders, OrderFilter{Year: "2024"})))
}

func TestQuery_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter OrderFilter
		want   []string
	}{
		{"no filter", OrderFilter{}, []string{"ORD-1", "ORD-2", "ORD-3", "ORD-4"}},
		{"all years keeps undated", OrderFilter{Year: "all"}, []string{"ORD-1", "ORD-2", "ORD-3", "ORD-4"}},
		{"year excludes undated", OrderFilter{Year: "2024"}, []string{"ORD-1", "ORD-4"}},
		{"order number", OrderFilter{SearchTerm: "ord-2"}, []string{"ORD-2"}},
		{"status label", OrderFilter{SearchTerm: "CANCELLED"}, []string{"ORD-3"}},
		{"item name", OrderFilter{SearchTerm: "batter"}, []string{"ORD-4"}},
		{"and composition", OrderFilter{Year: "2023", SearchTerm: "runner"}, []string{}},
		{"and composition match", OrderFilter{Year: "2024", SearchTerm: "runner"}, []string{"ORD-1"}},
		{"no match", OrderFilter{SearchTerm: "kayak"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numbers(Query(historyFixture(), tt.filter)))
		})
	}
}

func TestQuery_Idempotent(t *testing.T) {
	filters := []OrderFilter{
		{}, {Year: "2024"}, {SearchTerm: "r"}, {Year: "2023", SearchTerm: "shell"}, {Year: "1999"},
	}

	for _, f := range filters {
		once := Query(historyFixture(), f)
		twice := Query(once, f)
		assert.Equal(t, once, twice)
	}
}

func TestQuery_DoesNotModifyInput(t *testing.T) {
	orders := historyFixture()
	_ = Query(orders, OrderFilter{Year: "2024"})
	assert.Equal(t, historyFixture(), orders)
}

func TestQuery_ResultDoesNotShareItems(t *testing.T) {
	orders := historyFixture()

	matched := Query(orders, OrderFilter{Year: "2024"})
	require.NotEmpty(t, matched)
	matched[0].Items[0].Name = "changed"

	assert.Equal(t, historyFixture(), orders)
}

func TestSortOrders(t *testing.T) {
	orders := historyFixture()

	assert.Equal(t, []string{"ORD-1", "ORD-4", "ORD-2", "ORD-3"}, numbers(SortOrders(orders, SortDateDesc)))
	assert.Equal(t, []string{"ORD-2", "ORD-4", "ORD-1", "ORD-3"}, numbers(SortOrders(orders, SortDateAsc)))
	assert.Equal(t, []string{"ORD-2", "ORD-4", "ORD-1", "ORD-3"}, numbers(SortOrders(orders, SortTotalDesc)))
	assert.Equal(t, []string{"ORD-3", "ORD-1", "ORD-4", "ORD-2"}, numbers(SortOrders(orders, SortTotalAsc)))
	assert.Equal(t, numbers(SortOrders(orders, SortDateDesc)), numbers(SortOrders(orders, "bogus")))

	// input order untouched
	assert.Equal(t, []string{"ORD-1", "ORD-2", "ORD-3", "ORD-4"}, numbers(orders))
}

func TestParseOrderDate(t *testing.T) {
	for _, s := range []string{"Sep 15, 2024", "September 15, 2024", "2024-09-15", "2024-09-15T10:00:00Z"} {
		d, ok := ParseOrderDate(s)
		require.True(t, ok, s)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, 15, d.Day())
	}

	_, ok := ParseOrderDate("yesterday")
	assert.False(t, ok)
}

func TestPaginate(t *testing.T) {
	orders := historyFixture()

	page, meta := Paginate(orders, 1, 3)
	assert.Equal(t, []string{"ORD-1", "ORD-2", "ORD-3"}, numbers(page))
	assert.Equal(t, 4, meta.TotalItems)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 2, *meta.NextPage)
	assert.Nil(t, meta.PrevPage)

	page, meta = Paginate(orders, 2, 3)
	assert.Equal(t, []string{"ORD-4"}, numbers(page))
	assert.Nil(t, meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 1, *meta.PrevPage)

	page, meta = Paginate(orders, 9, 3)
	assert.Empty(t, page)
	assert.Equal(t, 9, meta.Page)

	page, meta = Paginate(orders, 0, 0)
	assert.Len(t, page, 4)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 10, meta.PageSize)
}

func TestPaginate_HugePage(t *testing.T) {
	orders := historyFixture()

	page, meta := Paginate(orders, math.MaxInt/2+1, 10)
	assert.Empty(t, page)
	assert.Nil(t, meta.NextPage)
	require.NotNil(t, meta.PrevPage)

	page, meta = Paginate(orders, math.MaxInt, math.MaxInt)
	assert.Empty(t, page)
	assert.Nil(t, meta.NextPage)

	page, meta = Paginate(orders, 1, math.MaxInt)
	assert.Len(t, page, 4)
	assert.Nil(t, meta.NextPage)
}

func TestPageInfo(t *testing.T) {
	p := PageInfo(25, 2, 10)
	require.NotNil(t, p.NextPage)
	require.NotNil(t, p.PrevPage)
	assert.Equal(t, 3, *p.NextPage)
	assert.Equal(t, 1, *p.PrevPage)

	p = PageInfo(20, 2, 10)
	assert.Nil(t, p.NextPage)

	p = PageInfo(0, -1, -5)
	assert.Equal(t, Page{Page: 1, PageSize: 10}, p)
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]SortKey{
		"":            SortDateDesc,
		"date_asc":    SortDateAsc,
		" TOTAL_ASC ": SortTotalAsc,
		"total_desc":  SortTotalDesc,
		"popularity":  SortDateDesc,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseSortKey(in), in)
	}
}

func TestAvailableYears(t *testing.T) {
	assert.Equal(t, []string{"2024", "2023"}, AvailableYears(historyFixture()))
	assert.Empty(t, AvailableYears(nil))
}
