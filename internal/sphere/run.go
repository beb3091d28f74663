package sphere

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// State is the animation state carried from one frame to the next.
type State struct {
	Angles Rot3
	Frame  uint64
}

// Next returns the state after one frame advanced by d.
func (s State) Next(d Rot3) State {
	return State{Angles: s.Angles.Add(d), Frame: s.Frame + 1}
}

// Renderer owns the buffers and renders the sphere into them.
type Renderer struct {
	cfg   Config
	rings []Ring
	proj  Projector
	buf   *Buffers
}

// NewRenderer allocates buffers for cfg. cfg must be valid.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{
		cfg:   cfg,
		rings: cfg.RingSet(),
		proj:  cfg.Projector(),
		buf:   NewBuffers(cfg.Width, cfg.Height),
	}
}

// Buffers exposes the frame and depth buffers of the last render.
func (r *Renderer) Buffers() *Buffers { return r.buf }

// Render clears the buffers and composites every ring rotated by angles.
// It returns the number of cells written.
func (r *Renderer) Render(angles Rot3) int {
	r.buf.Clear()
	return r.draw(angles)
}

func (r *Renderer) draw(angles Rot3) int {
	return r.proj.Composite(r.buf, Sphere(r.rings, r.cfg.Radius, r.cfg.Step, angles))
}

// FrameSink receives rendered frames. Home is called after the buffers are
// cleared and before drawing, Present once the frame is complete.
type FrameSink interface {
	Home()
	Present(b *Buffers) error
}

// Frame renders s, hands it to sink when non-nil and returns the state for
// the next frame. On a sink error the returned state is s.
func (r *Renderer) Frame(s State, sink FrameSink) (State, error) {
	r.buf.Clear()
	if sink != nil {
		sink.Home()
	}
	r.draw(s.Angles)
	if sink != nil {
		if err := sink.Present(r.buf); err != nil {
			return s, fmt.Errorf("present frame %d: %w", s.Frame, err)
		}
	}
	return s.Next(r.cfg.Deltas.Step()), nil
}

// Loop draws frames to w until ctx is done, or until cfg.Frames frames when it is positive.
// It returns the final state.
func Loop(ctx context.Context, cfg Config, w io.Writer) (State, error) {
	r := NewRenderer(cfg)
	p := NewPresenter(w, cfg.Color)
	if err := p.Setup(); err != nil {
		return State{}, err
	}
	defer func() { _ = p.Close() }()

	var (
		s     State
		err   error
		start = time.Now()
	)
	for cfg.Frames == 0 || s.Frame < uint64(cfg.Frames) {
		if err := ctx.Err(); err != nil {
			DebugLog("Stopping after %d frames: %v", s.Frame, err)
			return s, nil
		}
		if s, err = r.Frame(s, p); err != nil {
			return s, err
		}

		if s.Frame%LogEvery == 0 {
			elapsed := time.Since(start)
			DebugLog("Frames: %d, time: %s, fps: %.1f", s.Frame, elapsed, float64(s.Frame)/elapsed.Seconds())
		}
		if cfg.FrameDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(cfg.FrameDelay):
			}
		}
	}
	return s, nil
}

// openLogFile opens path for appending. An empty path gives a nil writer.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Run loads the config at cfgPath (empty for defaults), sets up logging and
// renders to stdout until SIGINT or SIGTERM.
func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if Debug {
		level = "debug"
	}
	file, err := openLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	SetupLogging(os.Stderr, file, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	Logger.Info().Int("width", cfg.Width).Int("height", cfg.Height).Int("rings", len(cfg.Rings)).Msg("Rendering")
	s, err := Loop(ctx, cfg, os.Stdout)
	Logger.Info().Uint64("frames", s.Frame).Msg("Stopped")
	return err
}
