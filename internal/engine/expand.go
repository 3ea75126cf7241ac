package engine

import "github.com/phyten/jsdev/internal/tagset"

// expand rewrites a matched tagged comment. The cursor stands just past the
// tag name; a pushed-back ( means the comment carries a condition.
//
//	/*tag stuff*/        → {stuff}
//	/*tag(cond) stuff*/  → if (cond) {stuff}
//	bound tag            → {method(stuff);}
//	bound tag with cond  → if (cond) {method(stuff);}
func (p *Processor) expand(def tagset.Definition) error {
	if p.cur.peek() == '(' {
		p.cur.emitString("if ")
		if err := p.condition(); err != nil {
			return err
		}
		p.cur.emit(' ')
	}
	p.cur.emit('{')
	if def.Method != "" {
		p.cur.emitString(def.Method)
		p.cur.emit('(')
		if err := p.stuff(); err != nil {
			return err
		}
		p.cur.emitString(");}")
	} else {
		if err := p.stuff(); err != nil {
			return err
		}
		p.cur.emit('}')
	}
	return nil
}

// condition echoes a balanced-bracket region starting at the pending (.
// One shared depth counter covers all three bracket pairs; strings and
// regexps inside the region are skipped via the literal scanners. The
// region ends when the counter returns to zero.
func (p *Processor) condition() error {
	left, depth := int('{'), 0
	for {
		c := p.cur.read(true)
		switch {
		case c == '(' || c == '{' || c == '[':
			depth++
		case c == ')' || c == '}' || c == ']':
			depth--
			if depth == 0 {
				return nil
			}
		case c == eof:
			return p.errAt(KindUnclosedCondition, "unterminated condition", p.cur.line)
		case c == '\'' || c == '"' || c == '`':
			if err := p.scanString(c, true); err != nil {
				return err
			}
		case c == '/':
			if n := p.cur.peek(); n == '/' || n == '*' {
				return p.errAt(KindUnexpectedComment, "unexpected comment", p.cur.line)
			}
			if precedesRegex(left) {
				if err := p.scanRegex(true); err != nil {
					return err
				}
			}
		case c == '*' && p.cur.peek() == '/':
			return p.errAt(KindUnclosedCondition, "unclosed condition", p.cur.line)
		}
		if c > ' ' {
			left = c
		}
	}
}

// stuff echoes the comment body up to the closing star-slash. Leading
// spaces are dropped. Bracket depth must never go negative and must be
// zero at the terminator. Stars that turn out not to start the terminator
// are echoed as ordinary body text.
func (p *Processor) stuff() error {
	left, depth := int('{'), 0
	for p.cur.peek() == ' ' {
		p.cur.read(false)
	}
	for {
		for p.cur.peek() == '*' {
			p.cur.read(false)
			if p.cur.peek() == '/' {
				p.cur.read(false)
				if depth > 0 {
					return p.errAt(KindUnbalancedStuff, "unbalanced stuff", p.cur.line)
				}
				return nil
			}
			p.cur.emit('*')
		}
		c := p.cur.read(true)
		switch {
		case c == eof:
			return p.errAt(KindUnterminatedStuff, "unterminated stuff", p.cur.line)
		case c == '\'' || c == '"' || c == '`':
			if err := p.scanString(c, true); err != nil {
				return err
			}
		case c == '(' || c == '{' || c == '[':
			depth++
		case c == ')' || c == '}' || c == ']':
			depth--
			if depth < 0 {
				return p.errAt(KindUnbalancedStuff, "unbalanced stuff", p.cur.line)
			}
		case c == '/':
			if n := p.cur.peek(); n == '/' || n == '*' {
				return p.errAt(KindUnexpectedComment, "unexpected comment", p.cur.line)
			}
			if precedesRegex(left) {
				if err := p.scanRegex(true); err != nil {
					return err
				}
			}
		}
		if c > ' ' {
			left = c
		}
	}
}
