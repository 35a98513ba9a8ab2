package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/karrick/rpnbrain"
	"github.com/mattn/go-runewidth"
)

// absent is printed in place of a value when the stack does not reduce.
const absent = "-"

type printer struct {
	w       io.Writer
	value   *color.Color
	absent  *color.Color
	failure *color.Color
	dim     *color.Color
}

func newPrinter(w io.Writer, useColor bool) *printer {
	p := &printer{
		w:       w,
		value:   color.New(color.FgGreen, color.Bold),
		absent:  color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
		dim:     color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.value, p.absent, p.failure, p.dim} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func formatResult(value float64, ok bool) string {
	if !ok {
		return absent
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func (p *printer) result(value float64, ok bool) {
	if !ok {
		p.absent.Fprintln(p.w, absent)
		return
	}
	p.value.Fprintln(p.w, formatResult(value, ok))
}

func (p *printer) fail(err error) {
	p.failure.Fprintf(p.w, "error: %s\n", err)
}

// stack prints the descriptions of b's tokens, right aligned, deepest first. Each line carries the
// token's distance from the top of the stack.
func (p *printer) stack(b *rpnbrain.Brain) {
	for _, line := range stackLines(b.Descriptions()) {
		fmt.Fprintln(p.w, line)
	}
}

func stackLines(descriptions []string) []string {
	var cellWidth int
	for _, d := range descriptions {
		if w := runewidth.StringWidth(d); w > cellWidth {
			cellWidth = w
		}
	}
	indexWidth := len(strconv.Itoa(len(descriptions) - 1))
	lines := make([]string, len(descriptions))
	for idx, d := range descriptions {
		depth := strconv.Itoa(len(descriptions) - 1 - idx)
		lines[idx] = runewidth.FillLeft(depth, indexWidth) + ": " + runewidth.FillLeft(d, cellWidth)
	}
	return lines
}

// operations prints the symbols of ops with their arity, aligned on display width.
func (p *printer) operations(ops rpnbrain.Operations) {
	symbols := ops.Symbols()
	var cellWidth int
	for _, s := range symbols {
		if w := runewidth.StringWidth(s); w > cellWidth {
			cellWidth = w
		}
	}
	for _, s := range symbols {
		tok, _ := ops.Lookup(s)
		fmt.Fprint(p.w, runewidth.FillRight(s, cellWidth), "  ")
		p.dim.Fprintln(p.w, tok.Kind())
	}
}
