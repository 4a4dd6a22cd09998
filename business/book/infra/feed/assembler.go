// Package feed holds transport-agnostic pieces of the per-exchange feed
// driver that benefit from being unit-tested without an actual socket.
package feed

import (
	"errors"
	"strings"
)

// FrameKind classifies one inbound WebSocket frame for the assembler.
type FrameKind int

const (
	FrameText FrameKind = iota
	FrameBinary
	FrameFragmentFirst
	FrameFragmentContinue
	FrameFragmentLast
	FramePing
	FramePong
	FrameClose
)

// ErrClosed is returned by Feed when handed a FrameClose frame; the caller
// treats this as a read-loop failure and lets the supervisor reconnect.
var ErrClosed = errors.New("feed: connection closed")

// FrameAssembler reassembles a logical message that may arrive as a single
// text/binary frame or as a first/continue/last fragment sequence. It holds
// no transport state and is safe to drive directly from test fixtures.
type FrameAssembler struct {
	buf strings.Builder
}

// NewFrameAssembler returns an assembler with an empty fragment buffer.
func NewFrameAssembler() *FrameAssembler {
	return &FrameAssembler{}
}

// Feed processes one frame. ready is true when text holds a complete
// logical message to parse; err is non-nil only for a close frame.
func (a *FrameAssembler) Feed(kind FrameKind, payload string) (text string, ready bool, err error) {
	switch kind {
	case FrameText, FrameBinary:
		return payload, true, nil
	case FrameFragmentFirst, FrameFragmentContinue:
		a.buf.WriteString(payload)
		return "", false, nil
	case FrameFragmentLast:
		a.buf.WriteString(payload)
		text = a.buf.String()
		a.buf.Reset()
		return text, true, nil
	case FramePing, FramePong:
		return "", false, nil
	case FrameClose:
		a.buf.Reset()
		return "", false, ErrClosed
	default:
		return "", false, errors.New("feed: unknown frame kind")
	}
}
