package engine

import "fmt"

// Kind classifies a fatal scan failure.
type Kind int

const (
	KindWrite Kind = iota
	KindUnterminatedString
	KindUnterminatedRegex
	KindUnterminatedCharClass
	KindUnterminatedComment
	KindNestedComment
	KindUnexpectedComment
	KindUnexpectedCommentClose
	KindUnclosedCondition
	KindUnbalancedStuff
	KindUnterminatedStuff
)

func (k Kind) String() string {
	switch k {
	case KindWrite:
		return "write"
	case KindUnterminatedString:
		return "unterminated_string"
	case KindUnterminatedRegex:
		return "unterminated_regexp"
	case KindUnterminatedCharClass:
		return "unterminated_char_class"
	case KindUnterminatedComment:
		return "unterminated_comment"
	case KindNestedComment:
		return "nested_comment"
	case KindUnexpectedComment:
		return "unexpected_comment"
	case KindUnexpectedCommentClose:
		return "unexpected_comment_close"
	case KindUnclosedCondition:
		return "unclosed_condition"
	case KindUnbalancedStuff:
		return "unbalanced_stuff"
	case KindUnterminatedStuff:
		return "unterminated_stuff"
	default:
		return "unknown"
	}
}

// Error は走査を打ち切った致命的エラーを表す。Line は未終端リテラルでは
// 構文の開始行、それ以外では検出行を指す。
type Error struct {
	Kind    Kind
	Line    int
	Snippet string
	msg     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d. %s.", e.Line, e.msg)
}
