// Package hexfile owns the open file and the in-memory byte window that the
// display is rendered from. Reads go through a single fixed-size window so
// that files far larger than memory can be paged with one ReadAt per miss.
package hexfile

import (
	"fmt"
	"io"
	"os"

	verr "hexview/internal/errors"
)

// The window must be at least four times larger than the biggest possible
// display grid (99 columns by 99 rows). Powers of two keep reads aligned.
const WindowSize = 0x10000 // 64 KiB

// MaxFileSize stops a few gigabytes short of the largest signed 64-bit
// offset, so that offset additions inside the viewer cannot overflow.
const MaxFileSize = 0x7FFFFFFF00000000

// Session is an open random-access file plus the current byte window.
// At most one session is open at a time; opening a new file closes the
// previous session first. All methods are single-threaded by contract.
type Session struct {
	path        string
	file        *os.File
	size        int64
	window      []byte
	windowStart int64
	windowUsed  int
}

// Open opens path for random-access reading and validates its size once,
// here; no later operation re-validates. limit caps the accepted file size
// and is itself capped at MaxFileSize; zero means MaxFileSize. Oversized
// files are rejected as an I/O error, matching the session-fatal handling
// of read failures.
func Open(path string, limit int64) (*Session, error) {
	if limit <= 0 || limit > MaxFileSize {
		limit = MaxFileSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, verr.NewIOError("open", path, 0, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, verr.NewIOError("stat", path, 0, err)
	}

	size := info.Size()
	if size < 0 || size > limit {
		f.Close()
		return nil, verr.NewIOError("open", path, 0,
			fmt.Errorf("file is too big: %d bytes", size))
	}

	return &Session{
		path:   path,
		file:   f,
		size:   size,
		window: make([]byte, WindowSize),
	}, nil
}

// Close releases the file. Safe to call on a nil or already-closed session.
func (s *Session) Close() {
	if s == nil || s.file == nil {
		return
	}
	_ = s.file.Close()
	s.file = nil
	s.windowStart = 0
	s.windowUsed = 0
}

func (s *Session) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Size is the total file length in bytes, fixed at open time.
func (s *Session) Size() int64 {
	if s == nil {
		return 0
	}
	return s.size
}

// Ensure guarantees that [offset, offset+length) is covered by the window,
// or as much of it as exists before end of file. On a miss it performs one
// full read, recentring the window so the requested offset lands roughly a
// quarter of the way in, rounded down to a half-window boundary. Sequential
// scrolling in either direction then hits the window for several pages.
//
// A failed read is fatal to the session: the caller must report the error
// and close the session. The previous window is not exposed after failure.
func (s *Session) Ensure(offset int64, length int) error {
	if s == nil || s.file == nil {
		return verr.NewLogicError("Ensure called with no open file")
	}
	if offset < 0 || length < 0 {
		return verr.NewLogicError("Ensure called with negative range %d+%d", offset, length)
	}

	end := offset + int64(length)
	if end > s.size {
		end = s.size
	}
	if offset >= s.windowStart && end <= s.windowStart+int64(s.windowUsed) {
		return nil
	}

	const half = WindowSize / 2
	start := offset + WindowSize/4 // ready to round to nearest half
	start = start - start%half - half
	if start < 0 {
		start = 0
	}
	wanted := int64(WindowSize)
	if remaining := s.size - start; remaining < wanted {
		wanted = remaining
	}

	if _, err := s.file.ReadAt(s.window[:wanted], start); err != nil && err != io.EOF {
		s.windowUsed = 0
		return verr.NewIOError("read", s.path, start, err)
	}
	s.windowStart = start
	s.windowUsed = int(wanted)
	return nil
}

// Byte returns the byte at offset if it is inside the current window.
// Callers must Ensure the range first; a miss here means the offset is
// past end of file or outside the ensured range.
func (s *Session) Byte(offset int64) (byte, bool) {
	if s == nil || offset < s.windowStart {
		return 0, false
	}
	idx := offset - s.windowStart
	if idx >= int64(s.windowUsed) {
		return 0, false
	}
	return s.window[idx], true
}

// Slice copies up to n bytes starting at offset out of the current window,
// truncated at the window's end. Used by row formatting after Ensure.
func (s *Session) Slice(offset int64, n int) []byte {
	if s == nil || n <= 0 || offset < s.windowStart {
		return nil
	}
	idx := offset - s.windowStart
	if idx >= int64(s.windowUsed) {
		return nil
	}
	end := idx + int64(n)
	if end > int64(s.windowUsed) {
		end = int64(s.windowUsed)
	}
	out := make([]byte, end-idx)
	copy(out, s.window[idx:end])
	return out
}
