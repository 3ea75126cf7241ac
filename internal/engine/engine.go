package engine

import (
	"io"
	"strings"

	"github.com/phyten/jsdev/internal/tagset"
)

// Processor walks one input stream and writes the transformed program to
// one output stream. Everything that is not a matched tagged comment
// passes through byte-for-byte. A Processor is single use: construct, Run
// once, discard.
type Processor struct {
	cur  *cursor
	tags *tagset.Registry
}

func New(r io.Reader, w io.Writer, tags *tagset.Registry) *Processor {
	return &Processor{cur: newCursor(r, w), tags: tags}
}

// Run emits the configured leading comment lines, scans the whole input,
// and flushes the output. The first detected failure stops the scan; bytes
// already produced may have been flushed.
func (p *Processor) Run() error {
	for _, line := range p.tags.Comments() {
		p.cur.emitString("// " + line + "\n")
	}
	if err := p.process(); err != nil {
		p.cur.flush()
		return err
	}
	return p.cur.flush()
}

// process is the top-level scan loop. It tracks the most recent significant
// character so a later slash can be classified as division or regexp.
func (p *Processor) process() error {
	left := 0
	c := p.cur.read(false)
	for {
		if err := p.cur.writeErr(); err != nil {
			return err
		}
		switch {
		case c == eof:
			return nil
		case c == '\'' || c == '"' || c == '`':
			p.cur.emit(c)
			if err := p.scanString(c, false); err != nil {
				return err
			}
			c = p.cur.read(false)
		case c == '/':
			// A slash can mean division, a regexp literal, a line
			// comment, or a block comment. A block comment can also
			// be a pattern to expand.
			switch p.cur.peek() {
			case '/':
				p.cur.emit('/')
				for {
					c = p.cur.read(true)
					if c == '\n' || c == '\r' || c == eof {
						break
					}
				}
				c = p.cur.read(false)
			case '*':
				p.cur.read(false)
				name, next := p.readTag()
				if def, ok := p.tags.Lookup(name); ok && name != "" {
					p.cur.unread(next)
					if err := p.expand(def); err != nil {
						return err
					}
				} else {
					p.cur.emitString("/*")
					p.cur.emitString(name)
					if err := p.echoComment(next); err != nil {
						return err
					}
				}
				c = p.cur.read(false)
			default:
				p.cur.emit('/')
				if precedesRegex(left) {
					if err := p.scanRegex(false); err != nil {
						return err
					}
				}
				left = '/'
				c = p.cur.read(false)
			}
		default:
			p.cur.emit(c)
			if c > ' ' {
				left = c
			}
			c = p.cur.read(false)
		}
	}
}

// readTag collects the identifier run that follows a slash-star, up to the
// configured maximum name length. It returns the candidate name and the
// first unconsumed character. Nothing is echoed yet: the caller decides
// whether the comment expands or passes through.
func (p *Processor) readTag() (string, int) {
	max := p.tags.MaxNameLen()
	var b strings.Builder
	c := p.cur.read(false)
	for b.Len() < max && isIdentChar(c) {
		b.WriteByte(byte(c))
		c = p.cur.read(false)
	}
	return b.String(), c
}

// echoComment passes an unmatched block comment through verbatim. c is the
// first body character after the candidate name, not yet echoed. Only the
// terminating star-slash is recognized; a comment opener inside the body
// is fatal.
func (p *Processor) echoComment(c int) error {
	for {
		if c == eof {
			return p.errAt(KindUnterminatedComment, "unterminated comment", p.cur.line)
		}
		p.cur.emit(c)
		switch c {
		case '/':
			c = p.cur.read(false)
			if c == '*' || c == '/' {
				return p.errAt(KindNestedComment, "nested comment", p.cur.line)
			}
		case '*':
			c = p.cur.read(false)
			if c == '/' {
				p.cur.emit('/')
				return nil
			}
		default:
			c = p.cur.read(false)
		}
	}
}

func (p *Processor) errAt(kind Kind, msg string, line int) error {
	return &Error{Kind: kind, Line: line, Snippet: p.cur.snippet(), msg: msg}
}
