package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"honnef.co/go/nines"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatSVG   = "svg"
)

var formats = []string{formatTable, formatJSON, formatSVG}

func validateFormat(f string) error {
	if !slices.Contains(formats, f) {
		return fmt.Errorf("unknown format %q, want one of %s", f, strings.Join(formats, ", "))
	}
	return nil
}

// writeCells renders the cells of a layout in the given format.
func writeCells[S nines.Scalar](w io.Writer, format string, l nines.ValidLayout[S], cells [nines.NumSlices]nines.Cell[S]) error {
	switch format {
	case formatJSON:
		return writeJSON(w, l, cells)
	case formatSVG:
		_, err := w.Write(renderSVG(l, cells))
		return err
	default:
		_, err := fmt.Fprintln(w, renderTable(cells))
		return err
	}
}

func xywhString[S nines.Scalar](r nines.ValidRect[S]) string {
	return fmt.Sprintf("%v,%v %v×%v", r.Left(), r.Top(), r.Width(), r.Height())
}

func renderTable[S nines.Scalar](cells [nines.NumSlices]nines.Cell[S]) string {
	rows := make([][]string, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, []string{
			c.Slice.String(),
			xywhString(c.Dst),
			xywhString(c.Src),
			c.Scale.Horizontal.String() + " × " + c.Scale.Vertical.String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Slice", "Dst", "Src", "Scale").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			s := cells[row].Slice
			switch {
			case col != 0:
				return lipgloss.NewStyle()
			case s == nines.Center:
				return styleCenter
			case s.IsCorner():
				return styleCorner
			default:
				return styleEdge
			}
		})

	return styleTitle.Render("nine-slice layout") + "\n" + t.Render()
}

type jsonRect[S nines.Scalar] struct {
	X S `json:"x"`
	Y S `json:"y"`
	W S `json:"w"`
	H S `json:"h"`
}

func toJSONRect[S nines.Scalar](r nines.ValidRect[S]) jsonRect[S] {
	return jsonRect[S]{X: r.Left(), Y: r.Top(), W: r.Width(), H: r.Height()}
}

type jsonCell[S nines.Scalar] struct {
	Slice      string      `json:"slice"`
	Dst        jsonRect[S] `json:"dst"`
	Src        jsonRect[S] `json:"src"`
	Horizontal nines.Scale `json:"horizontal"`
	Vertical   nines.Scale `json:"vertical"`
}

type jsonOutput[S nines.Scalar] struct {
	Dst   jsonDims[S]   `json:"dst"`
	Src   jsonDims[S]   `json:"src"`
	Cells []jsonCell[S] `json:"cells"`
}

type jsonDims[S nines.Scalar] struct {
	Outer   jsonRect[S]    `json:"outer"`
	Inner   jsonRect[S]    `json:"inner"`
	Borders jsonBorders[S] `json:"borders"`
}

type jsonBorders[S nines.Scalar] struct {
	Left   S `json:"left"`
	Right  S `json:"right"`
	Top    S `json:"top"`
	Bottom S `json:"bottom"`
}

func toJSONDims[S nines.Scalar](d nines.ValidDimensions[S]) jsonDims[S] {
	b := d.Borders()
	return jsonDims[S]{
		Outer:   toJSONRect(d.Outer()),
		Inner:   toJSONRect(d.Inner()),
		Borders: jsonBorders[S](b),
	}
}

func writeJSON[S nines.Scalar](w io.Writer, l nines.ValidLayout[S], cells [nines.NumSlices]nines.Cell[S]) error {
	out := jsonOutput[S]{
		Dst:   toJSONDims(l.Dst),
		Src:   toJSONDims(l.Src),
		Cells: make([]jsonCell[S], 0, len(cells)),
	}
	for _, c := range cells {
		out.Cells = append(out.Cells, jsonCell[S]{
			Slice:      c.Slice.String(),
			Dst:        toJSONRect(c.Dst),
			Src:        toJSONRect(c.Src),
			Horizontal: c.Scale.Horizontal,
			Vertical:   c.Scale.Vertical,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// renderSVG draws the destination slices, labeled with their names and the
// source rectangle they are taken from.
func renderSVG[S nines.Scalar](l nines.ValidLayout[S], cells [nines.NumSlices]nines.Cell[S]) []byte {
	outer := l.Dst.Outer()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%v %v %v %v">`+"\n",
		outer.Left(), outer.Top(), outer.Width(), outer.Height())
	for _, c := range cells {
		fill := "#eceff4"
		switch {
		case c.Slice == nines.Center:
			fill = "#88c0d0"
		case c.Slice.IsCorner():
			fill = "#d8dee9"
		}
		fmt.Fprintf(&buf, `  <rect id="%s" x="%v" y="%v" width="%v" height="%v" fill="%s" stroke="#4c566a" stroke-width="1" vector-effect="non-scaling-stroke">`+"\n",
			c.Slice, c.Dst.Left(), c.Dst.Top(), c.Dst.Width(), c.Dst.Height(), fill)
		fmt.Fprintf(&buf, "    <title>%s ← %s</title>\n  </rect>\n", c.Slice, c.Src)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
