package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/routegrid/report"
)

// Style selects the palette for class 4 and up: mid-search views highlight
// the explored area, the final view highlights the optimal route.
type Style int

const (
	// StyleSnapshot paints visited cells cyan.
	StyleSnapshot Style = iota
	// StyleFinal paints the optimal route light green and discarded cells red.
	StyleFinal
)

// cellSide is the pixel width of one map cell, its grid line included.
const cellSide = 24

// Legend geometry, in pixels.
const (
	legendSwatch = 16
	legendPad    = 8
)

var (
	colorFree      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlocked   = color.RGBA{A: 255}
	colorStart     = color.RGBA{R: 60, G: 80, B: 230, A: 255}
	colorGoal      = color.RGBA{G: 100, A: 255}
	colorExplored  = color.RGBA{G: 255, B: 255, A: 255}
	colorRoute     = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	colorDiscarded = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	colorGridLine  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Frame is an image.Image view of a classification matrix. It rasterizes
// lazily: pixels are computed in At, so a Frame costs no memory beyond the
// matrix it wraps.
type Frame struct {
	matrix report.Matrix
	style  Style
}

// NewFrame wraps m as a drawable frame in the given style.
func NewFrame(m report.Matrix, style Style) *Frame {
	return &Frame{matrix: m, style: style}
}

// ColorModel implements image.Image.
func (f *Frame) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image. The extra pixel closes the outermost grid
// line.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.matrix.Cols()*cellSide+1, f.matrix.Rows()*cellSide+1)
}

// At implements image.Image.
func (f *Frame) At(x, y int) color.Color {
	if !image.Pt(x, y).In(f.Bounds()) {
		return color.Transparent
	}
	if x%cellSide == 0 || y%cellSide == 0 {
		return colorGridLine
	}

	return f.classColor(f.matrix[y/cellSide][x/cellSide])
}

// classColor maps a cell class onto the palette for the frame's style.
func (f *Frame) classColor(c report.CellClass) color.Color {
	switch c {
	case report.ClassBlocked:
		return colorBlocked
	case report.ClassStart:
		return colorStart
	case report.ClassGoal:
		return colorGoal
	case report.ClassRoute:
		if f.style == StyleSnapshot {
			return colorExplored
		}
		return colorRoute
	case report.ClassDiscarded:
		return colorDiscarded
	}

	return colorFree
}

// legendClasses lists the classes a style's legend shows, in render order.
func legendClasses(style Style) []report.CellClass {
	classes := []report.CellClass{
		report.ClassFree,
		report.ClassBlocked,
		report.ClassStart,
		report.ClassGoal,
		report.ClassRoute,
	}
	if style == StyleFinal {
		classes = append(classes, report.ClassDiscarded)
	}

	return classes
}

// swatch is a small bordered square of one color, used in the legend strip.
type swatch struct {
	fill color.Color
}

func (s *swatch) ColorModel() color.Model { return color.RGBAModel }

func (s *swatch) Bounds() image.Rectangle {
	return image.Rect(0, 0, legendSwatch, legendSwatch)
}

func (s *swatch) At(x, y int) color.Color {
	if !image.Pt(x, y).In(s.Bounds()) {
		return color.Transparent
	}
	if x == 0 || y == 0 || x == legendSwatch-1 || y == legendSwatch-1 {
		return colorGridLine
	}

	return s.fill
}

// backdrop is a uniform white canvas sized for a frame plus its legend.
type backdrop struct {
	w, h int
}

func (b *backdrop) ColorModel() color.Model { return color.RGBAModel }

func (b *backdrop) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }

func (b *backdrop) At(x, y int) color.Color {
	if !image.Pt(x, y).In(b.Bounds()) {
		return color.Transparent
	}

	return colorFree
}

// Decorate rasterizes the frame and attaches a legend strip of class color
// swatches along its right edge.
func Decorate(f *Frame) (*image.RGBA, error) {
	classes := legendClasses(f.style)
	canvas := &backdrop{
		w: f.Bounds().Dx() + 2*legendPad + legendSwatch,
		h: max(f.Bounds().Dy(), legendPad+len(classes)*(legendSwatch+legendPad)),
	}

	decorated := image_utils.NewCompositeImage()
	if err := decorated.AddImage(canvas, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: setting backdrop: %w", err)
	}
	if err := decorated.AddImage(image_utils.ToRGBA(f), image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: setting base frame image: %w", err)
	}

	x := f.Bounds().Dx() + legendPad
	for i, class := range classes {
		at := image.Pt(x, legendPad+i*(legendSwatch+legendPad))
		if err := decorated.AddImage(&swatch{fill: f.classColor(class)}, at); err != nil {
			return nil, fmt.Errorf("render: adding %s legend swatch: %w", class, err)
		}
	}

	return image_utils.ToRGBA(decorated), nil
}

// SavePNG encodes img as PNG at path, creating or truncating the file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	defer f.Close()
	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encoding %s: %w", path, err)
	}

	return nil
}
