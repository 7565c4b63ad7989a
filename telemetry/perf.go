package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/treedee/ringbuf"
)

// Phase names for one frame.
const (
	PhaseInput     = "input"
	PhaseUpdate    = "update"
	PhaseTelemetry = "telemetry"
	PhaseDraw      = "draw"
)

var phases = []string{PhaseInput, PhaseUpdate, PhaseTelemetry, PhaseDraw}

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks performance metrics over a rolling window of frames.
type PerfCollector struct {
	samples       *ringbuf.Ring[PerfSample]
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of frames to average over (e.g., 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		samples:       ringbuf.New[PerfSample](windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples.Push(PerfSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	})
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgFrameDuration time.Duration
	MinFrameDuration time.Duration
	MaxFrameDuration time.Duration
	StdFrameDuration time.Duration

	// Average duration of each phase and its share of the frame, in percent.
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	FramesPerSecond float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}

	n := p.samples.Len()
	if n == 0 {
		return stats
	}

	durations := make([]float64, 0, n)
	phaseSum := make(map[string]time.Duration)
	for i, s := range p.samples.All() {
		durations = append(durations, float64(s.FrameDuration))
		if i == 0 || s.FrameDuration < stats.MinFrameDuration {
			stats.MinFrameDuration = s.FrameDuration
		}
		stats.MaxFrameDuration = max(stats.MaxFrameDuration, s.FrameDuration)
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	mean, std := stat.MeanStdDev(durations, nil)
	stats.AvgFrameDuration = time.Duration(mean)
	if n > 1 {
		stats.StdFrameDuration = time.Duration(std)
	}

	for phase, sum := range phaseSum {
		avg := sum / time.Duration(n)
		stats.PhaseAvg[phase] = avg
		if mean > 0 {
			stats.PhasePct[phase] = float64(avg) / mean * 100
		}
	}

	if mean > 0 {
		stats.FramesPerSecond = float64(time.Second) / mean
	}
	return stats
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_frame_us", s.AvgFrameDuration.Microseconds(),
		"min_frame_us", s.MinFrameDuration.Microseconds(),
		"max_frame_us", s.MaxFrameDuration.Microseconds(),
		"frames_per_sec", int(s.FramesPerSecond),
	}

	for _, phase := range phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}

	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrameDuration.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrameDuration.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrameDuration.Microseconds()),
		slog.Float64("frames_per_sec", s.FramesPerSecond),
	}
	for phase, pct := range s.PhasePct {
		attrs = append(attrs, slog.Float64(phase+"_pct", pct))
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	RunID        string  `csv:"run"`
	WindowEnd    uint64  `csv:"window_end"`
	AvgFrameUS   int64   `csv:"avg_frame_us"`
	MinFrameUS   int64   `csv:"min_frame_us"`
	MaxFrameUS   int64   `csv:"max_frame_us"`
	StdFrameUS   int64   `csv:"std_frame_us"`
	FramesPerSec float64 `csv:"frames_per_sec"`
	InputPct     float64 `csv:"input_pct"`
	UpdatePct    float64 `csv:"update_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
	DrawPct      float64 `csv:"draw_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(runID string, windowEnd uint64) PerfStatsCSV {
	return PerfStatsCSV{
		RunID:        runID,
		WindowEnd:    windowEnd,
		AvgFrameUS:   s.AvgFrameDuration.Microseconds(),
		MinFrameUS:   s.MinFrameDuration.Microseconds(),
		MaxFrameUS:   s.MaxFrameDuration.Microseconds(),
		StdFrameUS:   s.StdFrameDuration.Microseconds(),
		FramesPerSec: s.FramesPerSecond,
		InputPct:     s.PhasePct[PhaseInput],
		UpdatePct:    s.PhasePct[PhaseUpdate],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
		DrawPct:      s.PhasePct[PhaseDraw],
	}
}
