package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/dpinela/utf8slice/internal/atomicwrite"
	"github.com/dpinela/utf8slice/internal/clipboard"
	"github.com/dpinela/utf8slice/internal/config"
	"github.com/dpinela/utf8slice/internal/logger"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Exit statuses.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	Config    string `short:"c" long:"config" value-name:"PATH" description:"Configuration file (default: utf8slice/config.toml in the user config directory)"`
	Output    string `short:"o" long:"output" value-name:"PATH" description:"Write the result to PATH instead of standard output"`
	Newline   bool   `short:"n" long:"newline" description:"Print a newline after the result"`
	NoNewline bool   `short:"N" long:"no-newline" description:"Never print a newline after the result"`
	Copy      bool   `long:"copy" description:"Also copy the result to the clipboard"`
	Paste     bool   `long:"paste" description:"Read the input from the clipboard"`
	Verbose   bool   `short:"v" long:"verbose" description:"Log debugging information"`
}

type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	isTerminal     bool // Whether stdout is a terminal
	clip           clipboard.Store

	opts options
	cfg  *config.Config
	log  *zap.SugaredLogger
}

// A usageError is reported with exit status 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func (a *app) parser() *flags.Parser {
	p := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "utf8slice"
	for _, c := range []struct {
		name, short, long string
		data              interface{}
	}{
		{"len", "Print the number of characters", "Print the number of characters (Unicode scalar values) in the input.", &lenCommand{app: a}},
		{"slice", "Print characters [BEGIN, END)", "Print the characters at positions BEGIN through END-1.", &sliceCommand{app: a}},
		{"from", "Print characters from BEGIN on", "Print the characters from position BEGIN to the end of the input.", &fromCommand{app: a}},
		{"till", "Print characters before END", "Print the characters before position END.", &tillCommand{app: a}},
		{"inspect", "Print the character boundary table", "Print the position, byte offset, size, display width and code point of every character.", &inspectCommand{app: a}},
		{"config", "Print the effective configuration", "Print the configuration in effect, in TOML format.", &configCommand{app: a}},
	} {
		if _, err := p.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			panic(err)
		}
	}
	p.CommandHandler = a.runCommand
	return p
}

func (a *app) run(args []string) int {
	_, err := a.parser().ParseArgs(args)
	if err == nil {
		return exitOK
	}
	if ferr, ok := err.(*flags.Error); ok {
		if ferr.Type == flags.ErrHelp {
			fmt.Fprintln(a.stdout, ferr.Message)
			return exitOK
		}
		fmt.Fprintln(a.stderr, "utf8slice:", ferr.Message)
		return exitUsage
	}
	fmt.Fprintln(a.stderr, "utf8slice:", err)
	if _, ok := errors.Cause(err).(usageError); ok {
		return exitUsage
	}
	return exitFailure
}

// runCommand loads the configuration and sets up logging before running cmd.
func (a *app) runCommand(cmd flags.Commander, args []string) error {
	if len(args) > 0 {
		return usageError{fmt.Sprintf("unexpected arguments: %q", args)}
	}
	if a.opts.Newline && a.opts.NoNewline {
		return usageError{"--newline and --no-newline are mutually exclusive"}
	}
	cfg, err := config.Load(a.opts.Config)
	// Only a missing default config file is fine.
	if err != nil && (a.opts.Config != "" || !os.IsNotExist(errors.Cause(err))) {
		return err
	}
	a.cfg = cfg
	if a.log, err = logger.New(cfg.Log, a.opts.Verbose, a.stderr); err != nil {
		return err
	}
	defer a.log.Sync()
	return cmd.Execute(nil)
}

// readInput returns the text to operate on.
func (a *app) readInput(file string) ([]byte, error) {
	var (
		data []byte
		err  error
		src  = file
	)
	switch {
	case a.opts.Paste:
		src = "clipboard"
		data, err = a.clip.Paste()
	case file == "" || file == "-":
		src = "stdin"
		data, err = io.ReadAll(a.stdin)
	default:
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	a.log.Debugw("read input", "source", src, "bytes", len(data))
	return data, nil
}

func (a *app) wantNewline() bool {
	switch {
	case a.opts.Newline:
		return true
	case a.opts.NoNewline:
		return false
	case a.cfg.Newline != nil:
		return *a.cfg.Newline
	}
	return a.opts.Output == "" && a.isTerminal
}

// emit delivers a command's result. If text is set, result is a piece of the input
// and may be followed by a newline.
func (a *app) emit(result []byte, text bool) error {
	if a.opts.Copy {
		if err := a.clip.Copy(result); err != nil {
			return err
		}
		a.log.Debugw("copied result to clipboard", "bytes", len(result))
	}
	write := func(w io.Writer) error {
		if _, err := w.Write(result); err != nil {
			return err
		}
		if text && a.wantNewline() {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	}
	if a.opts.Output != "" {
		a.log.Debugw("writing result", "path", a.opts.Output, "bytes", len(result))
		return atomicwrite.Write(a.opts.Output, write)
	}
	return errors.Wrap(write(a.stdout), "writing result")
}

// An index is a character position given on the command line.
type index int

// UnmarshalFlag parses a non-negative decimal integer. Values too large for an int are
// past the end of any text, so they are clamped.
func (i *index) UnmarshalFlag(value string) error {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		if nerr, ok := err.(*strconv.NumError); !ok || nerr.Err != strconv.ErrRange {
			return usageError{fmt.Sprintf("invalid index %q: want a non-negative integer", value)}
		}
		n = math.MaxUint64
	}
	if n > math.MaxInt {
		n = math.MaxInt
	}
	*i = index(n)
	return nil
}
