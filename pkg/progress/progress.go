// Package progress reports the number of bytes read or written on a single rewritable terminal line.
package progress

//spellchecker:words strings time github dustin humanize
import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Reader consistently writes the number of bytes read to the Rewritable.
type Reader struct {
	io.Reader       // Reader to read from
	Bytes     int64 // total number of bytes read (so far)
	Total     int64 // expected number of bytes, if known

	Rewritable
}

func (cr *Reader) Read(bytes []byte) (int, error) {
	count, err := cr.Reader.Read(bytes)
	cr.Bytes += int64(count)
	if cr.Total > 0 {
		cr.Rewritable.Write(fmt.Sprintf("Read %s of %s", humanize.Bytes(uint64(cr.Bytes)), humanize.Bytes(uint64(cr.Total))))
	} else {
		cr.Rewritable.Write(fmt.Sprintf("Read %s", humanize.Bytes(uint64(cr.Bytes))))
	}
	return count, err
}

// Writer consistently writes the number of bytes written to the Rewritable.
type Writer struct {
	io.Writer       // Writer to write to
	Bytes     int64 // Total number of bytes written

	Rewritable
}

func (cw *Writer) Write(bytes []byte) (int, error) {
	count, err := cw.Writer.Write(bytes)
	cw.Bytes += int64(count)
	cw.Rewritable.Write(fmt.Sprintf("Wrote %s", humanize.Bytes(uint64(cw.Bytes))))
	return count, err
}

// DefaultFlushInterval is a reasonable default flush interval
const DefaultFlushInterval = time.Second / 30

// Rewritable is a line of output that is rewritten in place.
// A Rewritable with a nil Writer discards all output.
type Rewritable struct {
	Writer io.Writer

	FlushInterval  time.Duration // minimum time between flushes of the progress
	lastFlush      time.Time     // last time we flushed
	longestContent int           // longest content ever flushed
	content        string        // current content
}

// Write replaces the content of the line, and flushes it unless the last flush was too recent.
func (rw *Rewritable) Write(value string) {
	rw.content = value
	rw.Flush(false)
}

// Flush writes the current content to the underlying writer.
func (rw *Rewritable) Flush(force bool) {
	if rw.Writer == nil {
		return
	}
	if !force && time.Since(rw.lastFlush) <= rw.FlushInterval {
		return
	}

	rw.longestContent = max(rw.longestContent, len(rw.content))

	// blank out leftovers of longer previous content
	blank := strings.Repeat(" ", rw.longestContent-len(rw.content))
	fmt.Fprintf(rw.Writer, "\r%s%s", rw.content, blank)

	rw.lastFlush = time.Now()
}

// Close clears the line.
func (rw *Rewritable) Close() {
	if rw.Writer == nil {
		return
	}
	rw.content = ""
	rw.Flush(true)
	_, _ = rw.Writer.Write([]byte("\r"))
}
