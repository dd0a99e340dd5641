package table

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/message"

	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/units"
)

// Loads renders the per-fastener results of one load case. Rows follow
// fastener order and are numbered from 1; coordinate columns carry the
// set's length unit, load columns its force unit.
func Loads(set group.LoadSet, opts ...Option) string {
	cfg := newOptions(opts...)
	f := newFormatter(cfg)
	sys := set.Geometry.Units

	headers := []string{
		"#",
		"x [" + sys.Length.Symbol() + "]",
		"y [" + sys.Length.Symbol() + "]",
		"axial [" + sys.Force.Symbol() + "]",
		"shear x [" + sys.Force.Symbol() + "]",
		"shear y [" + sys.Force.Symbol() + "]",
		"|shear| [" + sys.Force.Symbol() + "]",
	}
	rows := make([][]string, len(set.Fasteners))
	for i, fs := range set.Fasteners {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			f.num(fs.Position.X),
			f.num(fs.Position.Y),
			f.num(fs.Axial),
			f.num(fs.Shear.X),
			f.num(fs.Shear.Y),
			f.num(fs.ShearMag),
		}
	}

	if cfg.plain {
		return renderPlain(headers, rows)
	}
	return renderStyled(headers, rows)
}

// Coordinates renders a fastener layout as an index/x/y/r table, where r
// is each fastener's distance from pivot. Meant for pattern previews
// before any loads exist.
func Coordinates(points []geom.Point, pivot geom.Point, sys units.System, opts ...Option) string {
	cfg := newOptions(opts...)
	f := newFormatter(cfg)

	headers := []string{
		"#",
		"x [" + sys.Length.Symbol() + "]",
		"y [" + sys.Length.Symbol() + "]",
		"r [" + sys.Length.Symbol() + "]",
	}
	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			f.num(p.X),
			f.num(p.Y),
			f.num(p.Distance(pivot)),
		}
	}

	if cfg.plain {
		return renderPlain(headers, rows)
	}
	return renderStyled(headers, rows)
}

// formatter renders numeric cells with locale grouping at fixed precision.
type formatter struct {
	p      *message.Printer
	format string
	zero   float64 // magnitudes below this round to zero at the set precision
}

func newFormatter(cfg Options) formatter {
	return formatter{
		p:      message.NewPrinter(cfg.locale),
		format: "%." + strconv.Itoa(cfg.precision) + "f",
		zero:   0.5 * math.Pow(10, -float64(cfg.precision)),
	}
}

// num formats one value. Anything that would render as "-0.00" is folded
// to plain zero first.
func (f formatter) num(v float64) string {
	if math.Abs(v) < f.zero {
		v = 0
	}
	return f.p.Sprintf(f.format, v)
}

// renderStyled draws a bordered lipgloss table; the header row is bold.
func renderStyled(headers []string, rows [][]string) string {
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle := lipgloss.NewStyle().Bold(true).Align(lipgloss.Right).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.Render()
}

// renderPlain aligns cells with runewidth padding, two spaces between
// columns, no border.
func renderPlain(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, plainRow(headers, widths))
	for _, row := range rows {
		lines = append(lines, plainRow(row, widths))
	}

	return strings.Join(lines, "\n")
}

func plainRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(runewidth.FillLeft(cell, widths[i]))
	}

	return b.String()
}
