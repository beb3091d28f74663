package sphere

// Defaults reproduce the classic 150x50 hollow sphere.
const (
	ScreenWidth    = 150
	ScreenHeight   = 50
	ScreenDistance = 35 // x and y are projected onto a screen this far from the viewer
	ZOffset        = 20.0
	Radius         = 10.0
	SampleStep     = 0.025 // spacing of x samples along each ring
	PitchDelta     = 0.005
	YawDelta       = 0.005
	RollDelta      = 0.001
	ForegroundANSI = 2 // green
	EmptyCell      = ' '
	LogEvery       = 500 // frames between throughput lines at debug level
	MaxRingSamples = 1 << 20
	// hot-loop guard
	minDepth = 1e-6
)
