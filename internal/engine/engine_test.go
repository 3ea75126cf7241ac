package engine_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/phyten/jsdev/internal/engine"
	"github.com/phyten/jsdev/internal/tagset"
)

func transform(t *testing.T, tokens []string, input string) (string, error) {
	t.Helper()
	reg, err := tagset.Build(tokens, 0)
	if err != nil {
		t.Fatalf("tagset.Build(%v) failed: %v", tokens, err)
	}
	var out bytes.Buffer
	runErr := engine.New(strings.NewReader(input), &out, reg).Run()
	return out.String(), runErr
}

func mustTransform(t *testing.T, tokens []string, input string) string {
	t.Helper()
	out, err := transform(t, tokens, input)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	return out
}

func scanKind(t *testing.T, err error) engine.Kind {
	t.Helper()
	if err == nil {
		t.Fatal("expected a scan error, got nil")
	}
	var se *engine.Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *engine.Error, got %T: %v", err, err)
	}
	return se.Kind
}

func TestPassthroughLeavesPlainSourceAlone(t *testing.T) {
	inputs := []string{
		"",
		"var a = 1;\n",
		"function f(x) { return x / 2; }\n",
		"a = b/c/d;\n",
		"var s = \"quoted /* not a comment */ text\";\n",
		"var re = /ab[*/]c/;\n",
		"// line comment with /*debug inside*/\nnext();\n",
		"var t = `template ${x} text`;\n",
		"no trailing newline",
	}
	for _, input := range inputs {
		got := mustTransform(t, []string{"debug"}, input)
		if got != input {
			t.Fatalf("passthrough changed input:\n in: %q\nout: %q", input, got)
		}
	}
}

func TestUnmatchedTaggedCommentRoundTrips(t *testing.T) {
	inputs := []string{
		"/*unknown stuff*/",
		"before /*unknown a ** b*/ after",
		"/**/",
		"/* spaced tag is never matched */",
		"/*unknown a/b*/",
	}
	for _, input := range inputs {
		got := mustTransform(t, []string{"debug"}, input)
		if got != input {
			t.Fatalf("unmatched comment changed:\n in: %q\nout: %q", input, got)
		}
	}
}

func TestExpansionShapes(t *testing.T) {
	cases := []struct {
		name   string
		tokens []string
		input  string
		want   string
	}{
		{"bare block", []string{"debug"}, "/*debug x=1*/", "{x=1}"},
		{"bound call", []string{"log:console.log"}, "/*log \"hi\"*/", "{console.log(\"hi\");}"},
		{"bound call with condition", []string{"alarm:alert"}, "/*alarm(x>0) x*/", "if (x>0) {alert(x);}"},
		{"bare block with condition", []string{"debug"}, "/*debug(ready) init()*/", "if (ready) {init()}"},
		{"empty stuff", []string{"debug"}, "/*debug*/", "{}"},
		{"stars inside stuff", []string{"debug"}, "/*debug a**b*/", "{a**b}"},
		{"trailing star kept", []string{"debug"}, "/*debug a**/", "{a*}"},
		{"space before paren makes it stuff", []string{"debug"}, "/*debug (x) y*/", "{(x) y}"},
		{"surrounding text preserved", []string{"debug"}, "a;\n/*debug x*/\nb;\n", "a;\n{x}\nb;\n"},
		{"first declaration wins", []string{"debug", "debug:alt"}, "/*debug x*/", "{x}"},
		{"dotted method", []string{"trace:window.console.log"}, "/*trace x, y*/", "{window.console.log(x, y);}"},
	}
	for _, tc := range cases {
		got := mustTransform(t, tc.tokens, tc.input)
		if got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestStuffProtectsLiterals(t *testing.T) {
	cases := []struct {
		name   string
		tokens []string
		input  string
		want   string
	}{
		{"star and slash inside string", []string{"log:console.log"}, "/*log \"a* /b\"*/", "{console.log(\"a* /b\");}"},
		{"escaped quote inside string", []string{"debug"}, `/*debug "a\"b"*/`, `{"a\"b"}`},
		{"regexp after equals", []string{"debug"}, "/*debug x=/a+/ ;*/", "{x=/a+/ ;}"},
		{"char class hides slash", []string{"debug"}, "/*debug x=/a[/]b/ ;*/", "{x=/a[/]b/ ;}"},
		{"condition with string paren", []string{"debug"}, "/*debug(a === ')') x*/", "if (a === ')') {x}"},
		{"condition with nested brackets", []string{"debug"}, "/*debug(f(a[0], {b: 1})) x*/", "if (f(a[0], {b: 1})) {x}"},
	}
	for _, tc := range cases {
		got := mustTransform(t, tc.tokens, tc.input)
		if got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestRegexpVersusDivisionAtTopLevel(t *testing.T) {
	// After identifier c the slashes are division and pass through; after
	// = the slash opens a regexp literal that is scanned as a unit.
	division := "a = b/c/d;\n"
	if got := mustTransform(t, []string{"debug"}, division); got != division {
		t.Fatalf("division mangled: %q", got)
	}
	regex := "x=/abc/;\n"
	if got := mustTransform(t, []string{"debug"}, regex); got != regex {
		t.Fatalf("regexp mangled: %q", got)
	}
	// A slash-slash inside a regexp literal must not start a line comment.
	tricky := "x=/a[/]b/; /*debug y*/\n"
	want := "x=/a[/]b/; {y}\n"
	if got := mustTransform(t, []string{"debug"}, tricky); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestScanFailures(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  engine.Kind
	}{
		{"unterminated string", "var s = \"abc", engine.KindUnterminatedString},
		{"unterminated regexp", "x=/abc", engine.KindUnterminatedRegex},
		{"unterminated char class", "x=/a[bc", engine.KindUnterminatedCharClass},
		{"unterminated comment", "/*unknown drifts away", engine.KindUnterminatedComment},
		{"nested block comment", "/*unknown a /* b*/", engine.KindNestedComment},
		{"nested line comment", "/*unknown a // b*/", engine.KindNestedComment},
		{"unbalanced stuff opener", "/*debug (a*/", engine.KindUnbalancedStuff},
		{"unbalanced stuff closer", "/*debug a)*/", engine.KindUnbalancedStuff},
		{"unterminated stuff", "/*debug a", engine.KindUnterminatedStuff},
		{"unclosed condition", "/*debug(a", engine.KindUnclosedCondition},
		{"condition hits comment close", "/*debug(a*/", engine.KindUnclosedCondition},
		{"comment inside condition", "/*debug(a // b) x*/", engine.KindUnexpectedComment},
		{"comment inside stuff", "/*debug // x*/", engine.KindUnexpectedComment},
		{"comment close inside stuff string", "/*debug \"a*/ x", engine.KindUnexpectedCommentClose},
	}
	for _, tc := range cases {
		_, err := transform(t, []string{"debug"}, tc.input)
		if got := scanKind(t, err); got != tc.kind {
			t.Fatalf("%s: got kind %v want %v (err: %v)", tc.name, got, tc.kind, err)
		}
	}
}

func TestUnterminatedStringReportsOpeningLine(t *testing.T) {
	_, err := transform(t, []string{"debug"}, "a;\nb;\n var s = \"open\nmore\n")
	var se *engine.Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *engine.Error, got %v", err)
	}
	if se.Kind != engine.KindUnterminatedString {
		t.Fatalf("unexpected kind: %v", se.Kind)
	}
	if se.Line != 3 {
		t.Fatalf("line mismatch: got %d want 3", se.Line)
	}
}

func TestLineNumbersMatchAcrossNewlineStyles(t *testing.T) {
	lf := "one();\ntwo();\nvar s = \"open\n"
	crlf := strings.ReplaceAll(lf, "\n", "\r\n")
	cr := strings.ReplaceAll(lf, "\n", "\r")

	for _, input := range []string{lf, crlf, cr} {
		_, err := transform(t, []string{"debug"}, input)
		var se *engine.Error
		if !errors.As(err, &se) {
			t.Fatalf("expected *engine.Error, got %v", err)
		}
		if se.Line != 3 {
			t.Fatalf("input %q: line mismatch: got %d want 3", input, se.Line)
		}
	}
}

func TestLeadingCommentInjection(t *testing.T) {
	got := mustTransform(t, []string{"-comment", "Devel Edition", "debug"}, "/*debug x*/")
	want := "// Devel Edition\n{x}"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestMultipleLeadingCommentsKeepOrder(t *testing.T) {
	got := mustTransform(t, []string{"-comment", "first", "-comment", "second"}, "a;")
	want := "// first\n// second\na;"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLineCommentSkipsTagRecognition(t *testing.T) {
	input := "// keep /*debug x*/ inert\nafter();\n"
	if got := mustTransform(t, []string{"debug"}, input); got != input {
		t.Fatalf("line comment body changed: %q", got)
	}
}

func TestCandidateLongerThanLimitNeverMatches(t *testing.T) {
	long := strings.Repeat("a", 81)
	input := "/*" + long + " body*/"
	if got := mustTransform(t, []string{"debug"}, input); got != input {
		t.Fatalf("oversized candidate changed: %q", got)
	}
}

func TestNulByteEndsInput(t *testing.T) {
	got := mustTransform(t, []string{"debug"}, "ab\x00cd")
	if got != "ab" {
		t.Fatalf("got %q want %q", got, "ab")
	}
}
