// Package reframer extracts discrete GT06 frames from a byte stream
// that may split a frame across reads or concatenate several frames
// into one read.
//
// Unlike a length-prefix splitter, this implementation paces itself by
// sentinel pairing: it scans for a start sentinel (0x78 0x78), then for
// the next end sentinel (0x0D 0x0A) after it, and yields everything in
// between as a candidate frame. It never inspects the length byte or
// CRC — callers run the frame codec over each candidate and discard it
// on a structural or CRC failure. This keeps the re-framer itself free
// of any protocol-version-specific field knowledge.
package reframer

import "bytes"

var (
	startSentinel = []byte{0x78, 0x78}
	endSentinel   = []byte{0x0D, 0x0A}
)

// Reframer buffers partial stream data across reads and yields complete
// frame candidates as they become available.
type Reframer struct {
	buf []byte
}

// New returns an empty Reframer.
func New() *Reframer {
	return &Reframer{}
}

// Feed appends newly read bytes and returns every complete frame
// candidate now extractable. Unconsumed bytes (an in-progress frame, or
// a trailing 0x78 that may begin the next start sentinel) are retained
// internally for the next call; other bytes outside a frame are
// discarded.
func (r *Reframer) Feed(data []byte) [][]byte {
	r.buf = append(r.buf, data...)
	frames, residue := ExtractFrames(r.buf)
	r.buf = residue
	return frames
}

// Reset discards any buffered partial data.
func (r *Reframer) Reset() {
	r.buf = nil
}

// Pending returns the number of buffered, not-yet-framed bytes.
func (r *Reframer) Pending() int {
	return len(r.buf)
}

// ExtractFrames scans buf for start/end sentinel pairs and returns each
// matched span (inclusive of both sentinels) as a frame candidate, plus
// whatever remains unconsumed: bytes from the last unmatched start
// sentinel onward, or a trailing byte matching the start sentinel's
// first byte (a possible split start sentinel), or nil otherwise.
// Bytes before that — including a stray end sentinel that precedes it
// — are discarded, never returned as residue.
func ExtractFrames(buf []byte) (frames [][]byte, residue []byte) {
	pos := 0
	for {
		startIdx := bytes.Index(buf[pos:], startSentinel)
		if startIdx == -1 {
			if len(buf) > pos && buf[len(buf)-1] == startSentinel[0] {
				return frames, buf[len(buf)-1:]
			}
			return frames, nil
		}
		startIdx += pos

		searchFrom := startIdx + len(startSentinel)
		endIdx := bytes.Index(buf[searchFrom:], endSentinel)
		if endIdx == -1 {
			return frames, buf[startIdx:]
		}
		endIdx += searchFrom

		frameEnd := endIdx + len(endSentinel)
		frame := make([]byte, frameEnd-startIdx)
		copy(frame, buf[startIdx:frameEnd])
		frames = append(frames, frame)

		pos = frameEnd
	}
}
