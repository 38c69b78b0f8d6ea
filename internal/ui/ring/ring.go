// Package ring draws the circular countdown indicator.
package ring

import (
	"image/color"
	"math"
	"sync"

	"pomodoro/internal/core/pomodoro"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Stroke geometry relative to a 300pt square: radius 122, width 21.
const (
	baseSize    = float32(300)
	outerFactor = (122.0 + 10.5) / 150.0
	innerFactor = (122.0 - 10.5) / 150.0
)

var (
	defaultStroke = color.NRGBA{R: 212, G: 196, B: 250, A: 255}
	defaultTrack  = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
)

// Segment is the part of the ring a pixel belongs to.
type Segment int

const (
	SegmentNone Segment = iota
	SegmentTrack
	SegmentStroke
)

// Completion returns the elapsed share of the current phase in [0, 1].
func Completion(state pomodoro.State) float64 {
	total := state.PhaseSeconds()
	if total <= 0 {
		return 1
	}
	return clamp(1 - float64(state.Remaining)/float64(total))
}

// Classify reports which segment covers pixel (x, y) of a w×h raster when
// the given share of the ring is still drawn. The stroke runs clockwise
// from twelve o'clock.
func Classify(x, y, w, h int, remaining float64) Segment {
	half := math.Min(float64(w), float64(h)) / 2
	if half <= 0 {
		return SegmentNone
	}
	dx := float64(x) + 0.5 - float64(w)/2
	dy := float64(y) + 0.5 - float64(h)/2
	distance := math.Hypot(dx, dy)
	if distance > half*outerFactor || distance < half*innerFactor {
		return SegmentNone
	}

	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle/(2*math.Pi) < clamp(remaining) {
		return SegmentStroke
	}
	return SegmentTrack
}

// Ring is a widget showing the remaining share of a phase as an arc.
type Ring struct {
	widget.BaseWidget

	StrokeColor color.Color
	TrackColor  color.Color

	mu        sync.RWMutex
	remaining float64
}

// New creates a full ring.
func New() *Ring {
	ring := &Ring{
		StrokeColor: defaultStroke,
		TrackColor:  defaultTrack,
		remaining:   1,
	}
	ring.ExtendBaseWidget(ring)
	return ring
}

// SetRemaining sets the drawn share of the ring and refreshes it.
func (ring *Ring) SetRemaining(value float64) {
	ring.mu.Lock()
	ring.remaining = clamp(value)
	ring.mu.Unlock()
	ring.Refresh()
}

// Remaining returns the drawn share of the ring.
func (ring *Ring) Remaining() float64 {
	ring.mu.RLock()
	defer ring.mu.RUnlock()
	return ring.remaining
}

// CreateRenderer implements fyne.Widget.
func (ring *Ring) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRasterWithPixels(ring.pixel)
	raster.SetMinSize(fyne.NewSize(baseSize, baseSize))
	return widget.NewSimpleRenderer(raster)
}

func (ring *Ring) pixel(x, y, w, h int) color.Color {
	switch Classify(x, y, w, h, ring.Remaining()) {
	case SegmentStroke:
		return ring.StrokeColor
	case SegmentTrack:
		return ring.TrackColor
	default:
		return color.Transparent
	}
}

func clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
