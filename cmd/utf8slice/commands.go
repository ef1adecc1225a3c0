package main

import (
	"bytes"
	"strconv"

	"github.com/dpinela/utf8slice"
	"github.com/dpinela/utf8slice/internal/inspect"
)

type fileArg struct {
	File string `positional-arg-name:"FILE" description:"Input file; standard input if absent or -"`
}

type lenCommand struct {
	app  *app
	Args fileArg `positional-args:"yes"`
}

func (c *lenCommand) Execute([]string) error {
	data, err := c.app.readInput(c.Args.File)
	if err != nil {
		return err
	}
	n := utf8slice.LenBytes(data)
	c.app.log.Debugw("counted characters", "bytes", len(data), "chars", n)
	return c.app.emit(strconv.AppendInt(nil, int64(n), 10), true)
}

type sliceCommand struct {
	app  *app
	Args struct {
		Begin index  `positional-arg-name:"BEGIN" required:"yes"`
		End   index  `positional-arg-name:"END" required:"yes"`
		File  string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

func (c *sliceCommand) Execute([]string) error {
	data, err := c.app.readInput(c.Args.File)
	if err != nil {
		return err
	}
	begin, end := int(c.Args.Begin), int(c.Args.End)
	result := utf8slice.SliceBytes(data, begin, end)
	c.app.log.Debugw("sliced", "begin", begin, "end", end, "bytes", len(result))
	return c.app.emit(result, true)
}

type fromCommand struct {
	app  *app
	Args struct {
		Begin index  `positional-arg-name:"BEGIN" required:"yes"`
		File  string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

func (c *fromCommand) Execute([]string) error {
	data, err := c.app.readInput(c.Args.File)
	if err != nil {
		return err
	}
	begin := int(c.Args.Begin)
	result := utf8slice.FromBytes(data, begin)
	c.app.log.Debugw("sliced", "begin", begin, "bytes", len(result))
	return c.app.emit(result, true)
}

type tillCommand struct {
	app  *app
	Args struct {
		End  index  `positional-arg-name:"END" required:"yes"`
		File string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

func (c *tillCommand) Execute([]string) error {
	data, err := c.app.readInput(c.Args.File)
	if err != nil {
		return err
	}
	end := int(c.Args.End)
	result := utf8slice.TillBytes(data, end)
	c.app.log.Debugw("sliced", "end", end, "bytes", len(result))
	return c.app.emit(result, true)
}

type inspectCommand struct {
	app  *app
	Args fileArg `positional-args:"yes"`
}

func (c *inspectCommand) Execute([]string) error {
	data, err := c.app.readInput(c.Args.File)
	if err != nil {
		return err
	}
	rows := inspect.Rows(utf8slice.NewIndex(string(data)))
	var buf bytes.Buffer
	if err := inspect.Write(&buf, rows, c.app.cfg.Inspect.Header); err != nil {
		return err
	}
	return c.app.emit(buf.Bytes(), false)
}

type configCommand struct {
	app *app
}

func (c *configCommand) Execute([]string) error {
	var buf bytes.Buffer
	if err := c.app.cfg.Encode(&buf); err != nil {
		return err
	}
	return c.app.emit(buf.Bytes(), false)
}
