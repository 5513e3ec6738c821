package hybridvec

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette maps the storage regions of a vector to display colors.
type Palette struct {
	Inline *color.Color // live inline slots
	Spill  *color.Color // spilled elements
	Unused *color.Color // dead inline slots
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Inline: color.New(color.FgBlue),
		Spill:  color.New(color.FgRed),
		Unused: color.New(color.FgHiBlack),
	}
}

// cell is one slot of a region row, with the display color kept separate
// from the text so that line wrapping counts visible characters only.
type cell struct {
	text  string
	color *color.Color
}

// Dump outputs the internal two-region layout of a vector in a colorized
// cell notation (for debugging purposes).
//
// Live inline slots, dead inline slots and spilled elements are rendered as
// distinguishable cells, one row per region, wrapped to the line width of the
// current terminal if stdout is interactive. Dump reads elements only through
// the bounds-checked API and never touches dead slots.
func Dump[T comparable](v *Vector[T], w io.Writer) {
	DumpColored(v, w, nil)
}

// DumpColored is Dump with a client-provided palette. A nil palette selects
// the default palette; nil palette entries suppress coloring for that region.
func DumpColored[T comparable](v *Vector[T], w io.Writer, palette *Palette) {
	if v == nil || w == nil {
		return
	}
	if palette == nil {
		palette = makeDefaultPalette()
	}
	sum := v.Summary()
	fmt.Fprintf(w, "hybrid vector, %d element(s), capacity (%d, %d)\n",
		sum.Len, sum.InlineCapacity, sum.SpillCapacity)
	width := lineWidth()
	cells := make([]cell, 0, sum.InlineCapacity)
	for i := 0; i < sum.Inline; i++ {
		value, ok := v.Get(i)
		assert(ok, "dump: live inline slot must be readable")
		cells = append(cells, cell{fmt.Sprintf("%v", value), palette.Inline})
	}
	for i := sum.Inline; i < sum.InlineCapacity; i++ {
		cells = append(cells, cell{"·", palette.Unused})
	}
	dumpRegion(w, "inline", cells, width)
	cells = cells[:0]
	for i := sum.InlineCapacity; i < sum.Len; i++ {
		value, ok := v.Get(i)
		assert(ok, "dump: spilled element must be readable")
		cells = append(cells, cell{fmt.Sprintf("%v", value), palette.Spill})
	}
	dumpRegion(w, "spill", cells, width)
}

func dumpRegion(w io.Writer, name string, cells []cell, width int) {
	if len(cells) == 0 {
		fmt.Fprintf(w, "%-7s | (empty)\n", name)
		return
	}
	label := name
	ccnt := 0
	for _, c := range cells {
		if ccnt == 0 {
			fmt.Fprintf(w, "%-7s |", label)
			label = "" // continuation lines carry no label
			ccnt = 10
		}
		if c.color != nil {
			fmt.Fprintf(w, " %s |", c.color.Sprint(c.text))
		} else {
			fmt.Fprintf(w, " %s |", c.text)
		}
		ccnt += len(c.text) + 3
		if ccnt >= width {
			fmt.Fprintln(w)
			ccnt = 0
		}
	}
	if ccnt != 0 {
		fmt.Fprintln(w)
	}
}

// lineWidth checks whether stdout is a terminal, and if so reads the
// terminal's width to wrap long region rows accordingly.
func lineWidth() int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && w > 20 {
			return w - 10
		}
	}
	return 65
}
