package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	RunID            string  `csv:"run"`
	WindowStartFrame uint64  `csv:"-"`
	WindowEndFrame   uint64  `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`

	// Events during window
	Throws  int `csv:"throws"`
	Strikes int `csv:"strikes"`
	Kicks   int `csv:"kicks"` // frames in which the player touched a frog

	// Player state at window end
	PlayerX     float64 `csv:"player_x"`
	PlayerY     float64 `csv:"player_y"`
	PlayerZ     float64 `csv:"player_z"`
	PlayerSpeed float64 `csv:"player_speed"`
	Victorious  bool    `csv:"victorious"`
	Balls       int     `csv:"balls"`

	// Frog state at window end
	FrogsOutside int `csv:"frogs_outside"`

	// Distance of each frog from the frogs' centroid
	FrogSpreadMean float64 `csv:"frog_spread_mean"`
	FrogSpreadStd  float64 `csv:"frog_spread_std"`
	FrogSpreadP10  float64 `csv:"frog_spread_p10"`
	FrogSpreadP50  float64 `csv:"frog_spread_p50"`
	FrogSpreadP90  float64 `csv:"frog_spread_p90"`
}

// SpreadStats holds the distribution summary of a sample.
type SpreadStats struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// ComputeSpreadStats calculates mean, std and empirical percentiles.
// Std is zero for fewer than two values.
func ComputeSpreadStats(values []float64) SpreadStats {
	n := len(values)
	if n == 0 {
		return SpreadStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s := SpreadStats{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	if math.IsNaN(s.Std) {
		s.Std = 0
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStartFrame),
		slog.Uint64("window_end", s.WindowEndFrame),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("throws", s.Throws),
		slog.Int("strikes", s.Strikes),
		slog.Int("kicks", s.Kicks),
		slog.Float64("player_x", s.PlayerX),
		slog.Float64("player_y", s.PlayerY),
		slog.Float64("player_z", s.PlayerZ),
		slog.Float64("player_speed", s.PlayerSpeed),
		slog.Bool("victorious", s.Victorious),
		slog.Int("balls", s.Balls),
		slog.Int("frogs_outside", s.FrogsOutside),
		slog.Float64("frog_spread_mean", s.FrogSpreadMean),
		slog.Float64("frog_spread_p50", s.FrogSpreadP50),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
