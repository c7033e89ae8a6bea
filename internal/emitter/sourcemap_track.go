package emitter

import "strings"

// positionTracker maintains the emitter's current generated (line,
// column) as text is committed to the sink, reporting each chunk to a
// SourceMapSink. Line/column advance purely from the bytes written.
// The tracker has no notion of the original source's positions: every
// mapping it reports carries original line 0 and column 0, whatever
// node is being formatted.
type positionTracker struct {
	sink       SourceMapSink
	sourceFile string
	line       int
	col        int
}

func newPositionTracker(sink SourceMapSink, sourceFile string) *positionTracker {
	return &positionTracker{sink: sink, sourceFile: sourceFile}
}

// advance updates the running generated position from a committed
// chunk: every newline in it advances the line, and the column is the
// length of the text after the chunk's last newline (or grows by the
// chunk's length when it holds no newline).
func (p *positionTracker) advance(chunk string) {
	if idx := strings.LastIndexByte(chunk, '\n'); idx >= 0 {
		p.line += strings.Count(chunk, "\n")
		p.col = len(chunk) - idx - 1
		return
	}
	p.col += len(chunk)
}

// trackedSink wraps a Sink, reporting the generated position reached
// after each write to a SourceMapSink before forwarding the write.
type trackedSink struct {
	inner   Sink
	tracker *positionTracker
}

func (t trackedSink) Write(s string) error {
	if err := t.inner.Write(s); err != nil {
		return err
	}
	t.tracker.advance(s)
	t.tracker.sink.Add(t.tracker.sourceFile, 0, 0, t.tracker.line, t.tracker.col)
	return nil
}
