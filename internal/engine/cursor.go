package engine

import (
	"bufio"
	"io"
	"strings"
)

const eof = -1

// maxSnippet bounds how much of the current line is retained for diagnostics.
const maxSnippet = 200

// cursor wraps the input and output streams with single-byte pushback,
// CR/LF-normalized line counting, and optional echo-on-read. Output order
// is exactly the order of echoed reads and explicit emits.
type cursor struct {
	r          *bufio.Reader
	w          *bufio.Writer
	pending    int
	hasPending bool
	line       int
	sawCR      bool
	lineBuf    []byte
	werr       error
}

func newCursor(r io.Reader, w io.Writer) *cursor {
	return &cursor{
		r:    bufio.NewReader(r),
		w:    bufio.NewWriter(w),
		line: 1,
	}
}

func (c *cursor) next() int {
	b, err := c.r.ReadByte()
	if err != nil || b == 0 {
		return eof
	}
	return int(b)
}

func (c *cursor) peek() int {
	if !c.hasPending {
		c.pending = c.next()
		c.hasPending = true
	}
	return c.pending
}

// read consumes the next byte, counting \r, \n, and \r\n each as one line
// break. When echo is true the byte is also written to the output.
func (c *cursor) read(echo bool) int {
	var ch int
	if c.hasPending {
		ch = c.pending
		c.hasPending = false
	} else {
		ch = c.next()
	}
	if ch == eof {
		return eof
	}
	if ch == '\r' {
		c.sawCR = true
		c.line++
		c.lineBuf = c.lineBuf[:0]
	} else {
		if ch == '\n' {
			if !c.sawCR {
				c.line++
			}
			c.lineBuf = c.lineBuf[:0]
		} else if len(c.lineBuf) < maxSnippet {
			c.lineBuf = append(c.lineBuf, byte(ch))
		}
		c.sawCR = false
	}
	if echo {
		c.emit(ch)
	}
	return ch
}

// unread stores one byte for the next peek or read. The scan never needs
// more than one byte of lookahead.
func (c *cursor) unread(ch int) {
	c.pending = ch
	c.hasPending = true
}

func (c *cursor) emit(ch int) {
	if ch <= 0 {
		return
	}
	if err := c.w.WriteByte(byte(ch)); err != nil && c.werr == nil {
		c.werr = err
	}
}

func (c *cursor) emitString(s string) {
	if _, err := c.w.WriteString(s); err != nil && c.werr == nil {
		c.werr = err
	}
}

func (c *cursor) writeErr() error {
	if c.werr != nil {
		return &Error{Kind: KindWrite, Line: c.line, msg: "write error"}
	}
	return nil
}

func (c *cursor) flush() error {
	if err := c.w.Flush(); err != nil && c.werr == nil {
		c.werr = err
	}
	return c.writeErr()
}

func (c *cursor) snippet() string {
	return strings.TrimSpace(string(c.lineBuf))
}
