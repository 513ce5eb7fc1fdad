// Package preview renders camera tracks and easing curves to images, for a
// quick visual check of an edit without opening the game.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"runtime"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/camtrack/internal/easing"
	"github.com/ivlev/camtrack/internal/system"
	"github.com/ivlev/camtrack/internal/track"
)

var (
	background = color.RGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xFF}
	gridColor  = color.RGBA{R: 0x2A, G: 0x2A, B: 0x33, A: 0xFF}

	channelColors = [4]color.RGBA{
		{R: 0xE5, G: 0x3E, B: 0x3E, A: 0xFF}, // x
		{R: 0x3E, G: 0xB5, B: 0x4A, A: 0xFF}, // y
		{R: 0x3E, G: 0x6B, B: 0xE5, A: 0xFF}, // zoom
		{R: 0xD8, G: 0xA0, B: 0x2E, A: 0xFF}, // angle
	}
)

// RenderTrack plots the four camera channels across the track's time range.
// The plot is drawn at double resolution and downsampled with CatmullRom,
// which keeps thin curve lines readable at small sizes.
func RenderTrack(tr *track.Track, width, height int) (image.Image, error) {
	if tr.Len() == 0 {
		return nil, fmt.Errorf("empty track")
	}
	if width < 16 || height < 16 {
		return nil, fmt.Errorf("preview size %dx%d too small", width, height)
	}

	w2, h2 := width*2, height*2
	keyframes := tr.Keyframes()
	t0 := float64(keyframes[0].Time)
	t1 := float64(keyframes[len(keyframes)-1].Time)
	if t1 <= t0 {
		t1 = t0 + 1
	}

	// One camera state per column; columns are sampled in parallel chunks.
	states := make([]track.State, w2)
	var g errgroup.Group
	workers := runtime.NumCPU()
	if workers > w2 {
		workers = w2
	}
	chunk := (w2 + workers - 1) / workers
	for start := 0; start < w2; start += chunk {
		start := start
		end := start + chunk
		if end > w2 {
			end = w2
		}
		g.Go(func() error {
			for col := start; col < end; col++ {
				q := t0 + (t1-t0)*float64(col)/float64(w2-1)
				states[col] = tr.StateAt(q)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Canvases come from a pool: watch mode re-renders on every level save.
	img := system.GetImage(image.Rect(0, 0, w2, h2))
	defer system.PutImage(img)
	fill(img, background)
	drawGrid(img, 8)

	channels := [4]func(track.State) float64{
		func(s track.State) float64 { return s.X },
		func(s track.State) float64 { return s.Y },
		func(s track.State) float64 { return s.Zoom },
		func(s track.State) float64 { return s.Angle },
	}
	for ci, ch := range channels {
		values := make([]float64, w2)
		for col, s := range states {
			values[col] = ch(s)
		}
		drawCurve(img, values, channelColors[ci])
	}

	// Keyframe markers as vertical ticks.
	for _, k := range keyframes {
		col := int((float64(k.Time) - t0) / (t1 - t0) * float64(w2-1))
		drawTick(img, col, gridColor)
	}

	return downsample(img, width, height), nil
}

// RenderEase plots a single easing curve at preview resolution.
func RenderEase(kind easing.Kind, params easing.Params, width, height int) (image.Image, error) {
	if width < 16 || height < 16 {
		return nil, fmt.Errorf("preview size %dx%d too small", width, height)
	}

	w2, h2 := width*2, height*2
	samples := easing.Sample(kind, params, easing.PreviewSamples)

	values := make([]float64, w2)
	for col := range values {
		// Nearest sample; the preview cache is denser than the plot normally is.
		idx := int(math.Round(float64(col) / float64(w2-1) * float64(len(samples)-1)))
		values[col] = samples[idx]
	}

	img := system.GetImage(image.Rect(0, 0, w2, h2))
	defer system.PutImage(img)
	fill(img, background)
	drawGrid(img, 4)
	drawCurve(img, values, channelColors[2])

	return downsample(img, width, height), nil
}

// WritePNG writes an image to path.
func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawGrid(img *image.RGBA, divisions int) {
	b := img.Bounds()
	for i := 1; i < divisions; i++ {
		x := b.Min.X + i*b.Dx()/divisions
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetRGBA(x, y, gridColor)
		}
		y := b.Min.Y + i*b.Dy()/divisions
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, gridColor)
		}
	}
}

func drawTick(img *image.RGBA, col int, c color.RGBA) {
	b := img.Bounds()
	if col < b.Min.X || col >= b.Max.X {
		return
	}
	for y := b.Max.Y - b.Dy()/12; y < b.Max.Y; y++ {
		img.SetRGBA(col, y, c)
	}
}

// drawCurve plots values as a connected line, normalized to the value range
// with a small margin. A flat channel draws as a centered horizontal line.
func drawCurve(img *image.RGBA, values []float64, c color.RGBA) {
	b := img.Bounds()
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
		lo -= 0.5
	}
	margin := b.Dy() / 10

	toY := func(v float64) int {
		frac := (v - lo) / span
		return b.Max.Y - 1 - margin - int(frac*float64(b.Dy()-2*margin-1))
	}

	prevY := toY(values[0])
	for col, v := range values {
		y := toY(v)
		y0, y1 := prevY, y
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for yy := y0; yy <= y1; yy++ {
			if yy >= b.Min.Y && yy < b.Max.Y {
				img.SetRGBA(b.Min.X+col, yy, c)
			}
		}
		prevY = y
	}
}

func downsample(src *image.RGBA, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
