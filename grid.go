package logogrid

import (
	"errors"
	"fmt"

	"github.com/VantageDataChat/logogrid/pptx"
)

// Layout policy names.
const (
	PolicyBalanced = "balanced"
	PolicyLegacy   = "legacy"
)

// GridSpec is the number of columns and rows on the slide.
type GridSpec struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// Capacity returns the number of cells in the grid.
func (g GridSpec) Capacity() int { return g.Columns * g.Rows }

// Cell returns the column and row of the i-th logo in row-major order.
func (g GridSpec) Cell(i int) (column, row int) {
	return i % g.Columns, i / g.Columns
}

func (g GridSpec) Validate() error {
	if g.Columns < 1 || g.Rows < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.Columns, g.Rows)
	}
	return nil
}

// SlideCanvas is the slide size in inches. Each side must lie within the
// slide sizes PowerPoint accepts, 1 to 56 inches.
type SlideCanvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (c SlideCanvas) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidCanvas, c.Width, c.Height)
	}
	for _, side := range []float64{c.Width, c.Height} {
		if emu := pptx.Inch(side); emu < pptx.MinSlideSize || emu > pptx.MaxSlideSize {
			return fmt.Errorf("%w: %gx%g in, each side must be between %g and %g in",
				ErrInvalidCanvas, c.Width, c.Height,
				pptx.EMUToInch(pptx.MinSlideSize), pptx.EMUToInch(pptx.MaxSlideSize))
		}
	}
	return nil
}

// LayoutPolicy selects how centres and cell budgets are derived.
type LayoutPolicy struct {
	Kind           string  `yaml:"policy"`
	ColumnMargin   float64 `yaml:"column_margin"` // inches
	DPI            float64 `yaml:"dpi"`
	HeightFraction float64 `yaml:"height_fraction"`
}

func DefaultLayoutPolicy() LayoutPolicy {
	return LayoutPolicy{
		Kind:           PolicyBalanced,
		ColumnMargin:   0.1,
		DPI:            96,
		HeightFraction: 0.5,
	}
}

func (p LayoutPolicy) Validate() error {
	switch p.Kind {
	case PolicyBalanced, PolicyLegacy:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPolicy, p.Kind)
	}
	if p.ColumnMargin < 0 {
		return errors.New("layout.column_margin must not be negative")
	}
	if p.DPI <= 0 {
		return errors.New("layout.dpi must be positive")
	}
	if p.HeightFraction <= 0 || p.HeightFraction > 1 {
		return errors.New("layout.height_fraction must be in (0, 1]")
	}
	return nil
}

// GridPlan holds cell centres in EMU and the per-cell pixel budget.
type GridPlan struct {
	ColumnCenters []int64
	RowCenters    []int64
	RowSpacing    int64
	CellWidthPx   int
	CellHeightPx  int
}

// Placement is the position of one logo on the slide, in EMU. X and Y are
// the top-left corner.
type Placement struct {
	Index  int
	Column int
	Row    int
	X      int64
	Y      int64
	Width  int64
	Height int64
}

// PlanGrid computes column and row centres and cell budgets. It has no side
// effects and returns the same plan for the same inputs.
func PlanGrid(grid GridSpec, canvas SlideCanvas, policy LayoutPolicy) (*GridPlan, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := canvas.Validate(); err != nil {
		return nil, err
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	var colSpacing, rowSpacing float64
	cols, rows := float64(grid.Columns), float64(grid.Rows)
	switch policy.Kind {
	case PolicyBalanced:
		usable := canvas.Width - 2*policy.ColumnMargin
		if usable <= 0 {
			return nil, fmt.Errorf("%w: column margin %g leaves no room on a %g in slide",
				ErrInvalidCanvas, policy.ColumnMargin, canvas.Width)
		}
		colSpacing = usable / cols
		rowSpacing = canvas.Height / (rows + 1)
	case PolicyLegacy:
		colSpacing = canvas.Width
		if grid.Columns > 1 {
			colSpacing = canvas.Width / (cols - 1)
		}
		rowSpacing = canvas.Height / 2
		if grid.Rows > 1 {
			rowSpacing = canvas.Height / (rows - 1)
		}
	}

	plan := &GridPlan{
		ColumnCenters: make([]int64, grid.Columns),
		RowCenters:    make([]int64, grid.Rows),
		RowSpacing:    pptx.Inch(rowSpacing),
		CellWidthPx:   int(canvas.Width * policy.DPI / cols),
		CellHeightPx:  int(canvas.Height * policy.DPI / rows * policy.HeightFraction),
	}
	if plan.CellWidthPx < 1 || plan.CellHeightPx < 1 {
		return nil, fmt.Errorf("%w: %dx%d cells on a %gx%g in slide are smaller than one pixel",
			ErrInvalidGrid, grid.Columns, grid.Rows, canvas.Width, canvas.Height)
	}
	for i := range plan.ColumnCenters {
		plan.ColumnCenters[i] = pptx.Inch(policy.ColumnMargin + colSpacing/2 + float64(i)*colSpacing)
	}
	for r := range plan.RowCenters {
		plan.RowCenters[r] = pptx.Inch(float64(r+1) * rowSpacing)
	}
	return plan, nil
}

// Place centres a w x h pixel logo in the cell for index i. ok is false
// when the index falls below the last row.
func (p *GridPlan) Place(i, w, h int, dpi float64) (pl Placement, ok bool) {
	cols := len(p.ColumnCenters)
	col, row := i%cols, i/cols
	if row >= len(p.RowCenters) {
		return Placement{}, false
	}
	we, he := pptx.Pixel(w, dpi), pptx.Pixel(h, dpi)
	return Placement{
		Index:  i,
		Column: col,
		Row:    row,
		X:      p.ColumnCenters[col] - we/2,
		Y:      p.RowCenters[row] - he/2,
		Width:  we,
		Height: he,
	}, true
}
