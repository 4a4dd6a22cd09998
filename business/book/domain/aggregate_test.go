package domain

import (
	"strconv"
	"testing"
)

// S5 — merge(A); merge(B); finalize() ties broken by merge-insertion order.
func TestAggregatorFinalizeTieBreaksByMergeOrder(t *testing.T) {
	a := New("A")
	a.Insert(nil, nil, Ask, dec("1"), dec("10"))
	a.Insert(nil, nil, Ask, dec("2"), dec("10"))

	b := New("B")
	b.Insert(nil, nil, Ask, dec("1"), dec("10"))
	b.Insert(nil, nil, Ask, dec("3"), dec("10"))

	agg := NewAggregator("pair")
	agg.Merge(a)
	agg.Merge(b)
	summary := agg.Finalize()

	if len(summary.Bids) != 0 {
		t.Fatalf("expected no bids, got %+v", summary.Bids)
	}
	want := []SummaryLevel{
		{Exchange: "A", Price: "1", Amount: "10"},
		{Exchange: "B", Price: "1", Amount: "10"},
		{Exchange: "A", Price: "2", Amount: "10"},
		{Exchange: "B", Price: "3", Amount: "10"},
	}
	if len(summary.Asks) != len(want) {
		t.Fatalf("expected %d asks, got %d: %+v", len(want), len(summary.Asks), summary.Asks)
	}
	for i, lvl := range want {
		got := summary.Asks[i]
		if got.Exchange != lvl.Exchange || got.Price != lvl.Price || got.Amount != lvl.Amount {
			t.Fatalf("ask %d: want %+v, got %+v", i, lvl, got)
		}
	}
	if summary.Spread != "0" {
		t.Fatalf("expected spread 0, got %q", summary.Spread)
	}
}

// Property 3: after merge(A); merge(B); finalize(), bids are non-increasing
// and asks are non-decreasing in price.
func TestAggregatorFinalizeOrdering(t *testing.T) {
	a := New("A")
	a.Insert(nil, nil, Bid, dec("100"), dec("1"))
	a.Insert(nil, nil, Bid, dec("99"), dec("1"))
	a.Insert(nil, nil, Ask, dec("101"), dec("1"))

	b := New("B")
	b.Insert(nil, nil, Bid, dec("100.5"), dec("1"))
	b.Insert(nil, nil, Ask, dec("102"), dec("1"))
	b.Insert(nil, nil, Ask, dec("101.5"), dec("1"))

	agg := NewAggregator("pair")
	agg.Merge(a)
	agg.Merge(b)
	summary := agg.Finalize()

	for i := 1; i < len(summary.Bids); i++ {
		if mustDecimal(summary.Bids[i].Price).GreaterThan(mustDecimal(summary.Bids[i-1].Price)) {
			t.Fatalf("bids not non-increasing: %+v", summary.Bids)
		}
	}
	for i := 1; i < len(summary.Asks); i++ {
		if mustDecimal(summary.Asks[i].Price).LessThan(mustDecimal(summary.Asks[i-1].Price)) {
			t.Fatalf("asks not non-decreasing: %+v", summary.Asks)
		}
	}
}

// Property 4: finalize() returns at most 10 entries per side regardless of
// input ladder size.
func TestAggregatorFinalizeCapsAtTenEntriesPerSide(t *testing.T) {
	agg := NewAggregator("pair")
	for _, name := range []string{"A", "B", "C"} {
		book := New(name)
		for i := 1; i <= 12; i++ {
			book.Insert(nil, nil, Bid, dec(strconv.Itoa(200-i)), dec("1"))
			book.Insert(nil, nil, Ask, dec(strconv.Itoa(300+i)), dec("1"))
		}
		agg.Merge(book)
	}
	summary := agg.Finalize()
	if len(summary.Bids) > 10 {
		t.Fatalf("expected at most 10 bids, got %d", len(summary.Bids))
	}
	if len(summary.Asks) > 10 {
		t.Fatalf("expected at most 10 asks, got %d", len(summary.Asks))
	}
}
