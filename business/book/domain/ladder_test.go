package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Property 1: insert(side, p, 0) is equivalent to removing price p.
func TestLadderInsertZeroDeletes(t *testing.T) {
	l := NewLadder(Bid)
	l.Insert(dec("10"), dec("1"))
	if l.Len() != 1 {
		t.Fatalf("expected 1 level, got %d", l.Len())
	}
	l.Insert(dec("10"), dec("0"))
	if l.Len() != 0 {
		t.Fatalf("expected level removed, got %d", l.Len())
	}
}

func TestLadderInsertNegativeDeletes(t *testing.T) {
	l := NewLadder(Ask)
	l.Insert(dec("5"), dec("2"))
	l.Insert(dec("5"), dec("-1"))
	if l.Len() != 0 {
		t.Fatalf("expected level removed on negative qty, got %d", l.Len())
	}
}

// Property 2 / S6: trim(k) keeps the best k levels.
func TestLadderTrimBidsKeepsHighest(t *testing.T) {
	l := NewLadder(Bid)
	for _, p := range []string{"10", "11", "12"} {
		l.Insert(dec(p), dec("1"))
	}
	l.Trim(2)
	snap := l.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(snap))
	}
	if !snap[0].Price.Equal(dec("12")) || !snap[1].Price.Equal(dec("11")) {
		t.Fatalf("unexpected levels after trim: %+v", snap)
	}
}

func TestLadderTrimAsksKeepsLowest(t *testing.T) {
	l := NewLadder(Ask)
	for _, p := range []string{"20", "21", "22"} {
		l.Insert(dec(p), dec("1"))
	}
	l.Trim(2)
	snap := l.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(snap))
	}
	if !snap[0].Price.Equal(dec("20")) || !snap[1].Price.Equal(dec("21")) {
		t.Fatalf("unexpected levels after trim: %+v", snap)
	}
}

func TestLadderTrimNoOpWhenUnderLimit(t *testing.T) {
	l := NewLadder(Bid)
	l.Insert(dec("1"), dec("1"))
	l.Trim(10)
	if l.Len() != 1 {
		t.Fatalf("expected no change, got %d levels", l.Len())
	}
}

func TestLadderBestReflectsSideConvention(t *testing.T) {
	bids := NewLadder(Bid)
	bids.Insert(dec("10"), dec("1"))
	bids.Insert(dec("12"), dec("1"))
	best, ok := bids.Best()
	if !ok || !best.Equal(dec("12")) {
		t.Fatalf("expected best bid 12, got %v ok=%v", best, ok)
	}

	asks := NewLadder(Ask)
	asks.Insert(dec("20"), dec("1"))
	asks.Insert(dec("18"), dec("1"))
	best, ok = asks.Best()
	if !ok || !best.Equal(dec("18")) {
		t.Fatalf("expected best ask 18, got %v ok=%v", best, ok)
	}
}
