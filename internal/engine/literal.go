package engine

// scanString consumes and echoes a string literal after its opening quote.
// A backslash escapes the following character, whatever it is. In comment
// mode a star-slash inside the string means the surrounding tagged comment
// is about to close early, which is fatal.
func (p *Processor) scanString(quote int, inComment bool) error {
	was := p.cur.line
	for {
		c := p.cur.read(true)
		if c == quote {
			return nil
		}
		if c == '\\' {
			c = p.cur.read(true)
		}
		if inComment && c == '*' && p.cur.peek() == '/' {
			return p.errAt(KindUnexpectedCommentClose, "unexpected close comment in string", p.cur.line)
		}
		if c == eof {
			return p.errAt(KindUnterminatedString, "unterminated string literal", was)
		}
	}
}

// scanRegex consumes and echoes a regexp literal after its opening slash.
// Inside a [...] character class only ] terminates; a backslash escapes
// everywhere. Outside a class an unescaped / ends the literal.
func (p *Processor) scanRegex(inComment bool) error {
	was := p.cur.line
	for {
		c := p.cur.read(true)
		if c == '[' {
			for {
				c = p.cur.read(true)
				if c == ']' {
					break
				}
				if c == '\\' {
					c = p.cur.read(true)
				}
				if inComment && c == '*' && p.cur.peek() == '/' {
					return p.errAt(KindUnexpectedCommentClose, "unexpected close comment in regexp", p.cur.line)
				}
				if c == eof {
					return p.errAt(KindUnterminatedCharClass, "unterminated set in regexp literal", p.cur.line)
				}
			}
		} else if c == '/' {
			if inComment {
				if n := p.cur.peek(); n == '/' || n == '*' {
					return p.errAt(KindUnexpectedComment, "unexpected comment", p.cur.line)
				}
			}
			return nil
		} else if c == '\\' {
			c = p.cur.read(true)
		}
		if inComment && c == '*' && p.cur.peek() == '/' {
			return p.errAt(KindUnexpectedCommentClose, "unexpected close comment in regexp", p.cur.line)
		}
		if c == eof {
			return p.errAt(KindUnterminatedRegex, "unterminated regexp literal", was)
		}
	}
}
