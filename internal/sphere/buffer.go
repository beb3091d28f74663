package sphere

import "fmt"

// Buffers is a character frame buffer with a parallel inverse-depth buffer.
// Both are flat and row-major: idx = x + y*Width.
type Buffers struct {
	Width, Height int
	Frame         []byte
	Depth         []Real // 1/z per cell, 0 means empty
}

// NewBuffers allocates cleared buffers of the given size.
func NewBuffers(width, height int) *Buffers {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("buffer size must be positive, got %dx%d", width, height))
	}
	b := &Buffers{
		Width:  width,
		Height: height,
		Frame:  make([]byte, width*height),
		Depth:  make([]Real, width*height),
	}
	b.Clear()
	return b
}

// Size returns the number of cells.
func (b *Buffers) Size() int { return len(b.Frame) }

// Clear resets every cell to a space at infinite depth.
func (b *Buffers) Clear() {
	for i := range b.Frame {
		b.Frame[i] = EmptyCell
	}
	clear(b.Depth)
}

// Index maps a cell to its flat offset.
func (b *Buffers) Index(x, y int) int { return x + y*b.Width }

// At returns the character and inverse depth at a cell.
func (b *Buffers) At(x, y int) (byte, Real) {
	i := b.Index(x, y)
	return b.Frame[i], b.Depth[i]
}

// Plot writes ch at idx when the index is on screen and invDepth is strictly
// nearer than the current occupant. Ties keep the occupant. Reports whether it wrote.
func (b *Buffers) Plot(idx int, invDepth Real, ch byte) bool {
	if idx < 0 || idx >= len(b.Frame) || invDepth <= b.Depth[idx] {
		return false
	}
	b.Depth[idx] = invDepth
	b.Frame[idx] = ch
	return true
}

// Row returns row y of the frame buffer.
func (b *Buffers) Row(y int) []byte {
	return b.Frame[y*b.Width : (y+1)*b.Width]
}
