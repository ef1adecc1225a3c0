package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dpinela/utf8slice/internal/clipboard"
)

const testText = "The 🚀 goes to the 🌑!"

type testRun struct {
	stdout, stderr string
	status         int
}

// newTestApp returns an app reading stdin from the given string, with the user's own
// configuration and clipboard kept out of the way.
func newTestApp(t *testing.T, stdin string, tty bool) (a *app, stdout, stderr *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	a = &app{
		stdin:      strings.NewReader(stdin),
		stdout:     stdout,
		stderr:     stderr,
		isTerminal: tty,
		clip:       clipboard.Store{Path: filepath.Join(t.TempDir(), "clipboard")},
	}
	return a, stdout, stderr
}

func runApp(t *testing.T, stdin string, tty bool, args ...string) testRun {
	t.Helper()
	a, stdout, stderr := newTestApp(t, stdin, tty)
	status := a.run(args)
	return testRun{stdout: stdout.String(), stderr: stderr.String(), status: status}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

var commandTests = []struct {
	args []string
	want string
}{
	{args: []string{"len"}, want: "20"},
	{args: []string{"slice", "4", "5"}, want: "🚀"},
	{args: []string{"slice", "5", "4"}, want: ""},
	{args: []string{"slice", "18", "1000"}, want: "🌑!"},
	{args: []string{"slice", "0", "18446744073709551615"}, want: testText},
	{args: []string{"slice", "4", "99999999999999999999999"}, want: "🚀 goes to the 🌑!"},
	{args: []string{"from", "99999999999999999999999"}, want: ""},
	{args: []string{"from", "4"}, want: "🚀 goes to the 🌑!"},
	{args: []string{"from", "30"}, want: ""},
	{args: []string{"till", "5"}, want: "The 🚀"},
	{args: []string{"till", "0"}, want: ""},
	{args: []string{"-N", "till", "5", "-"}, want: "The 🚀"},
}

func TestCommandsOnStdin(t *testing.T) {
	for _, tt := range commandTests {
		r := runApp(t, testText, false, tt.args...)
		if r.status != exitOK {
			t.Errorf("%q: exit status %d, stderr %q", tt.args, r.status, r.stderr)
			continue
		}
		if r.stdout != tt.want {
			t.Errorf("%q: got %q, want %q", tt.args, r.stdout, tt.want)
		}
	}
}

func TestCommandsOnFile(t *testing.T) {
	name := writeFile(t, "in.txt", testText)
	r := runApp(t, "ignored", false, "slice", "4", "10", name)
	if r.status != exitOK || r.stdout != "🚀 goes" {
		t.Errorf("slice on file: got %q (status %d, stderr %q), want %q", r.stdout, r.status, r.stderr, "🚀 goes")
	}
}

func TestNewline(t *testing.T) {
	cfgFalse := writeFile(t, "config.toml", "Newline = false\n")
	for _, tt := range []struct {
		tty  bool
		args []string
		want string
	}{
		{tty: true, args: []string{"till", "3"}, want: "The\n"},
		{tty: false, args: []string{"till", "3"}, want: "The"},
		{tty: false, args: []string{"-n", "till", "3"}, want: "The\n"},
		{tty: true, args: []string{"--no-newline", "till", "3"}, want: "The"},
		{tty: true, args: []string{"-c", cfgFalse, "till", "3"}, want: "The"},
	} {
		r := runApp(t, testText, tt.tty, tt.args...)
		if r.stdout != tt.want {
			t.Errorf("tty=%v %q: got %q, want %q (stderr %q)", tt.tty, tt.args, r.stdout, tt.want, r.stderr)
		}
	}
}

func TestOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	r := runApp(t, testText, true, "-o", out, "from", "18")
	if r.status != exitOK {
		t.Fatalf("exit status %d, stderr %q", r.status, r.stderr)
	}
	if r.stdout != "" {
		t.Errorf("with -o, stdout = %q, want nothing", r.stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "🌑!" {
		t.Errorf("output file contains %q, want %q", data, "🌑!")
	}
}

func TestCopyPaste(t *testing.T) {
	a, stdout, stderr := newTestApp(t, testText, false)
	if status := a.run([]string{"--copy", "from", "4"}); status != exitOK {
		t.Fatalf("copy: exit status %d, stderr %q", status, stderr.String())
	}
	stdout.Reset()
	a.opts = options{}
	if status := a.run([]string{"--paste", "till", "1"}); status != exitOK {
		t.Fatalf("paste: exit status %d, stderr %q", status, stderr.String())
	}
	if got := stdout.String(); got != "🚀" {
		t.Errorf("after copy and paste: got %q, want %q", got, "🚀")
	}
}

func TestInspect(t *testing.T) {
	r := runApp(t, "a\u0345", false, "inspect")
	if r.status != exitOK {
		t.Fatalf("exit status %d, stderr %q", r.status, r.stderr)
	}
	lines := strings.Split(strings.TrimSuffix(r.stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header and 2 rows:\n%s", len(lines), r.stdout)
	}
	if !strings.Contains(lines[2], "U+0345") {
		t.Errorf("second row %q does not describe U+0345", lines[2])
	}
}

func TestConfigCommand(t *testing.T) {
	cfg := writeFile(t, "config.toml", "[Log]\nLevel = \"warn\"\n")
	r := runApp(t, "", false, "-c", cfg, "config")
	if r.status != exitOK {
		t.Fatalf("exit status %d, stderr %q", r.status, r.stderr)
	}
	if !strings.Contains(r.stdout, `Level = "warn"`) {
		t.Errorf("config output %q does not contain the configured level", r.stdout)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	r := runApp(t, testText, false, "-v", "slice", "4", "5")
	if r.stdout != "🚀" {
		t.Errorf("got %q, want %q", r.stdout, "🚀")
	}
	if !strings.Contains(r.stderr, "sliced") {
		t.Errorf("stderr %q does not contain debug log", r.stderr)
	}
}

func TestErrors(t *testing.T) {
	for _, tt := range []struct {
		args   []string
		status int
	}{
		{args: nil, status: exitUsage},
		{args: []string{"slice", "1"}, status: exitUsage},
		{args: []string{"slice", "x", "2"}, status: exitUsage},
		{args: []string{"from", "--", "-1"}, status: exitUsage},
		{args: []string{"till", "1.5"}, status: exitUsage},
		{args: []string{"slice", "0", "+3"}, status: exitUsage},
		{args: []string{"len", "a", "b"}, status: exitUsage},
		{args: []string{"-n", "-N", "len"}, status: exitUsage},
		{args: []string{"bogus"}, status: exitUsage},
		{args: []string{"len", filepath.Join(t.TempDir(), "missing.txt")}, status: exitFailure},
		{args: []string{"-c", filepath.Join(t.TempDir(), "missing.toml"), "len"}, status: exitFailure},
	} {
		r := runApp(t, testText, false, tt.args...)
		if r.status != tt.status {
			t.Errorf("%q: exit status %d, want %d (stderr %q)", tt.args, r.status, tt.status, r.stderr)
		}
		if r.stderr == "" {
			t.Errorf("%q: nothing written to stderr", tt.args)
		}
	}
}

func TestHelp(t *testing.T) {
	r := runApp(t, "", false, "--help")
	if r.status != exitOK || !strings.Contains(r.stdout, "slice") {
		t.Errorf("--help: status %d, stdout %q", r.status, r.stdout)
	}
}
