package termcolor

import (
	"os"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want ColorMode
		ok   bool
	}{
		{"", ModeAuto, true},
		{"auto", ModeAuto, true},
		{"ALWAYS", ModeAlways, true},
		{" never ", ModeNever, true},
		{"rainbow", ModeAuto, false},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseMode(%q) failed: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseMode(%q): expected error", tc.in)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseMode(%q): got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestDetectModeEnvPriority(t *testing.T) {
	pipe, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer pipe.Close()
	defer w.Close()

	cases := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"dumb terminal wins", map[string]string{"TERM": "dumb", "FORCE_COLOR": "1"}, ModeNever},
		{"NO_COLOR wins over force", map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, ModeNever},
		{"CLICOLOR zero disables", map[string]string{"CLICOLOR": "0"}, ModeNever},
		{"force enables on pipe", map[string]string{"CLICOLOR_FORCE": "1"}, ModeAlways},
		{"plain pipe disables", map[string]string{}, ModeNever},
	}
	for _, tc := range cases {
		if got := DetectMode(pipe, tc.env); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestApplyWrapsWithSGR(t *testing.T) {
	got := Apply(ErrorStyle, "boom", true)
	want := "\x1b[1;31mboom\x1b[0m"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got := Apply(ErrorStyle, "boom", false); got != "boom" {
		t.Fatalf("disabled style should be a no-op, got %q", got)
	}
	if got := Apply(Style{}, "plain", true); got != "plain" {
		t.Fatalf("empty style should be a no-op, got %q", got)
	}
}

func TestEnvMap(t *testing.T) {
	env := EnvMap([]string{"A=1", "B=", "C", ""})
	if env["A"] != "1" || env["B"] != "" || env["C"] != "" {
		t.Fatalf("unexpected env map: %v", env)
	}
	if _, ok := env[""]; ok {
		t.Fatal("empty entries should be skipped")
	}
}
