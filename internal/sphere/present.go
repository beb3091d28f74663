package sphere

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"
)

// Presenter writes frames to a terminal, redrawing in place from the top-left corner.
type Presenter struct {
	out   *termenv.Output
	w     *bufio.Writer
	color termenv.ANSIColor
}

// NewPresenter wraps w. color is an ANSI palette index (0-15) used as the foreground.
func NewPresenter(w io.Writer, color int) *Presenter {
	bw := bufio.NewWriterSize(w, 1<<16)
	return &Presenter{
		out:   termenv.NewOutput(bw, termenv.WithProfile(termenv.ANSI)),
		w:     bw,
		color: termenv.ANSIColor(color),
	}
}

// Setup clears the screen, hides the cursor and sets the persistent foreground color.
func (p *Presenter) Setup() error {
	p.out.ClearScreen()
	p.out.HideCursor()
	if _, err := p.w.WriteString(termenv.CSI + p.color.Sequence(false) + "m"); err != nil {
		return err
	}
	return p.w.Flush()
}

// Home moves the cursor to the top-left cell so the next frame overwrites the last.
func (p *Presenter) Home() {
	p.out.MoveCursor(1, 1)
}

// Present writes the frame buffer and flushes. The first cell of every row is
// replaced by a line break, so rows are separated without trailing newlines.
func (p *Presenter) Present(b *Buffers) error {
	for i, ch := range b.Frame {
		if i%b.Width == 0 {
			ch = '\n'
		}
		if err := p.w.WriteByte(ch); err != nil {
			return err
		}
	}
	return p.w.Flush()
}

// Close restores default attributes and the cursor.
func (p *Presenter) Close() error {
	p.out.Reset()
	p.out.ShowCursor()
	_, err := p.w.WriteString("\n")
	if err != nil {
		return err
	}
	return p.w.Flush()
}
