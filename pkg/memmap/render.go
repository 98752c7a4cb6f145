package memmap

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/xlab/treeprint"
)

const elided = "—"

var reportHeader = []string{"addr", "size", "bytes", "%", "name"}

// Renderer writes reports as human readable text tables.
type Renderer struct {
	// Color enables ANSI styling of the report title.
	Color bool
}

func (r *Renderer) title(w io.Writer, title string) error {
	c := color.New(color.Bold)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	if _, err := c.Fprint(w, title); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(reportHeader)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}

// Render writes the title line, the column header, one row per padding gap
// or section, and the totals row.
func (r *Renderer) Render(w io.Writer, rep *Report) error {
	if err := r.title(w, rep.Name+" allocation:"); err != nil {
		return err
	}
	var buf bytes.Buffer
	table := newTable(&buf)
	for _, l := range rep.Lines {
		table.Append(reportRow(l))
	}
	table.Append([]string{
		"total",
		hexSize(rep.Total),
		"(" + rep.Total.String() + ")",
		formatPercent(rep.Percent()),
		elided,
	})
	table.Render()
	return writeTrimmed(w, &buf)
}

// writeTrimmed copies r to w line by line, dropping the column padding the
// table leaves after the last cell.
func writeTrimmed(w io.Writer, r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		if _, err := io.WriteString(w, strings.TrimRight(s.Text(), " \t")+"\n"); err != nil {
			return err
		}
	}
	return s.Err()
}

// hexSize renders b as hexadecimal padded to five digits.
func hexSize(b ByteCount) string {
	h := b.Hex()
	if len(h) < 5 {
		h = strings.Repeat("0", 5-len(h)) + h
	}
	return "0x" + h
}

func reportRow(l Line) []string {
	if l.Kind == LinePadding {
		return []string{
			"(padding)",
			hexSize(l.Size),
			elided,
			elided,
			elided,
		}
	}
	return []string{
		fmt.Sprintf("0x%x-0x%x", l.Start, l.End),
		hexSize(l.Size),
		"(" + l.Size.String() + ")",
		formatPercent(l.Percent),
		l.Name,
	}
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.3f%%", p)
}

// RenderSymbols writes the symbols of a region as a tree grouped by the
// section defining them. Groups appear in order of their first symbol.
func (r *Renderer) RenderSymbols(w io.Writer, name string, symbols []NamedSymbol) error {
	if err := r.title(w, name+" symbols:"); err != nil {
		return err
	}
	tree := treeprint.NewWithRoot(fmt.Sprintf("%s (%d)", name, len(symbols)))
	branches := make(map[string]treeprint.Tree)
	for _, s := range symbols {
		section := s.Symbol.Section
		if section == "" {
			section = "(none)"
		}
		b, ok := branches[section]
		if !ok {
			b = tree.AddBranch(section)
			branches[section] = b
		}
		label := s.Name
		if s.Symbol.Size > 0 {
			label = fmt.Sprintf("%s (%s)", s.Name, humanize.IBytes(s.Symbol.Size))
		}
		b.AddMetaNode(fmt.Sprintf("0x%x", s.Address), label)
	}
	_, err := io.WriteString(w, tree.String())
	return err
}
