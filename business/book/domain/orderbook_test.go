package domain

import (
	"context"
	"testing"

	"github.com/fd1az/bookfeed/internal/logger"
)

type recordingLogger struct {
	warnings []string
}

func (r *recordingLogger) Debug(ctx context.Context, msg string, kv ...interface{}) {}
func (r *recordingLogger) Info(ctx context.Context, msg string, kv ...interface{})  {}
func (r *recordingLogger) Warn(ctx context.Context, msg string, kv ...interface{}) {
	r.warnings = append(r.warnings, msg)
}
func (r *recordingLogger) Error(ctx context.Context, msg string, kv ...interface{}) {}
func (r *recordingLogger) With(kv ...interface{}) logger.LoggerInterface {
	return r
}

var _ logger.LoggerInterface = (*recordingLogger)(nil)

func TestOrderbookInsertAppliesToCorrectSide(t *testing.T) {
	book := New("kraken")
	book.Insert(context.Background(), nil, Bid, dec("100"), dec("1"))
	if book.Bid.Len() != 1 || book.Ask.Len() != 0 {
		t.Fatalf("expected one bid level and no asks")
	}
}

func TestOrderbookCrossedBookIsDiagnosticOnly(t *testing.T) {
	log := &recordingLogger{}
	book := New("kraken")
	book.Insert(context.Background(), log, Bid, dec("101"), dec("1"))
	book.Insert(context.Background(), log, Ask, dec("100"), dec("1"))

	if len(log.warnings) == 0 {
		t.Fatalf("expected a crossed-book warning")
	}
	// The book is still emitted with both levels present, not rejected.
	if book.Bid.Len() != 1 || book.Ask.Len() != 1 {
		t.Fatalf("crossed book must still be applied")
	}
}

func TestOrderbookCloneIsIndependent(t *testing.T) {
	book := New("bitstamp")
	book.Insert(context.Background(), nil, Bid, dec("10"), dec("1"))

	clone := book.Clone()
	book.Insert(context.Background(), nil, Bid, dec("11"), dec("1"))

	if clone.Bid.Len() != 1 {
		t.Fatalf("clone must not observe mutations after cloning")
	}
}
