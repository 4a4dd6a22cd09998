package feed

import "testing"

// Property 5 — a message split across fragment-first/continue/last frames
// reassembles to the same text as if it had arrived whole.
func TestFrameAssemblerReassemblesFragments(t *testing.T) {
	a := NewFrameAssembler()

	if _, ready, err := a.Feed(FrameFragmentFirst, `{"a":`); ready || err != nil {
		t.Fatalf("first fragment should not yield a message, got ready=%v err=%v", ready, err)
	}
	if _, ready, err := a.Feed(FrameFragmentContinue, `1,"b":`); ready || err != nil {
		t.Fatalf("continue fragment should not yield a message, got ready=%v err=%v", ready, err)
	}
	text, ready, err := a.Feed(FrameFragmentLast, `2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ready {
		t.Fatalf("expected the last fragment to yield a complete message")
	}
	if text != `{"a":1,"b":2}` {
		t.Fatalf("reassembled text mismatch: %q", text)
	}
}

func TestFrameAssemblerWholeTextPassesThrough(t *testing.T) {
	a := NewFrameAssembler()
	text, ready, err := a.Feed(FrameText, `{"x":1}`)
	if err != nil || !ready || text != `{"x":1}` {
		t.Fatalf("unexpected result: text=%q ready=%v err=%v", text, ready, err)
	}
}

func TestFrameAssemblerPingPongIgnored(t *testing.T) {
	a := NewFrameAssembler()
	if _, ready, err := a.Feed(FramePing, ""); ready || err != nil {
		t.Fatalf("ping should be a no-op")
	}
	if _, ready, err := a.Feed(FramePong, ""); ready || err != nil {
		t.Fatalf("pong should be a no-op")
	}
}

func TestFrameAssemblerCloseReturnsError(t *testing.T) {
	a := NewFrameAssembler()
	_, ready, err := a.Feed(FrameClose, "")
	if ready {
		t.Fatalf("close should never be ready")
	}
	if err != ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestFrameAssemblerBufferResetsAfterClose(t *testing.T) {
	a := NewFrameAssembler()
	a.Feed(FrameFragmentFirst, "partial")
	a.Feed(FrameClose, "")

	text, ready, err := a.Feed(FrameFragmentLast, "rest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ready || text != "rest" {
		t.Fatalf("expected a fresh buffer after close, got text=%q ready=%v", text, ready)
	}
}
