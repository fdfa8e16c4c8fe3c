package trainpolicy

import "fmt"

// Interpolation is the resampling filter used by distortion augmentation
type Interpolation int

const (
	Cubic Interpolation = iota
	Linear
	Nearest
)

func (i Interpolation) String() string {
	switch i {
	case Cubic:
		return "cubic"
	case Linear:
		return "linear"
	case Nearest:
		return "nearest"
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// RateConfig holds every training-rate field a user can edit.
// Whether the schedule is cyclic is decided by the caller, not stored here.
type RateConfig struct {
	// batch shape
	N    int
	D    int // pinned to 1 while editing
	H    int
	W    int
	PadD int // pinned to 0 while editing
	PadH int
	PadW int

	// optimizer-gated
	Momentum  float64
	Beta2     float64
	Gamma     float64
	FinalRate float64
	L2Penalty float64

	// regularization
	Dropout        float64
	InputDropout   float64
	Cutout         float64
	CutMix         float64
	HorizontalFlip bool
	VerticalFlip   bool

	// augmentation; AutoAugment/ColorCast/ColorAngle need a color dataset
	AutoAugment   float64
	ColorCast     int
	ColorAngle    float64
	Distortion    float64
	Interpolation Interpolation
	Rotation      float64
	Scaling       float64

	Optimizer   Optimizer
	MaximumRate float64
	MinimumRate float64
	Epochs      int

	// cyclic-restart mode
	Cycles          int
	EpochMultiplier int

	// flat-decay mode
	DecayFactor      float64
	DecayAfterEpochs int
}

// DefaultRateConfig returns a configuration that passes ValidateRateConfig
// under any dataset and schedule mode
func DefaultRateConfig() RateConfig {
	return RateConfig{
		N:                128,
		D:                1,
		H:                32,
		W:                32,
		PadH:             4,
		PadW:             4,
		Momentum:         0.9,
		Beta2:            0.999,
		Gamma:            0.003,
		FinalRate:        0.1,
		L2Penalty:        0.0005,
		HorizontalFlip:   true,
		Interpolation:    Cubic,
		Optimizer:        NAG,
		MaximumRate:      0.05,
		MinimumRate:      0.0001,
		Epochs:           100,
		Cycles:           1,
		EpochMultiplier:  1,
		DecayFactor:      1,
		DecayAfterEpochs: 1,
	}
}

// ValidateRateConfig checks every live field is inside its domain. Fields
// that live marks as not applicable are skipped whatever their value; the
// fields of the two schedule modes are checked by ValidateSchedule.
func ValidateRateConfig(cfg RateConfig, live Liveness) error {
	if !cfg.Optimizer.valid() {
		return invalidArgument("RateConfig", "Optimizer", int(cfg.Optimizer))
	}
	if cfg.N <= 0 {
		return invalidConfig("N", cfg.N, "> 0")
	}
	if cfg.D <= 0 {
		return invalidConfig("D", cfg.D, "> 0")
	}
	if cfg.H <= 0 {
		return invalidConfig("H", cfg.H, "> 0")
	}
	if cfg.W <= 0 {
		return invalidConfig("W", cfg.W, "> 0")
	}
	if cfg.PadD < 0 || cfg.PadH < 0 || cfg.PadW < 0 {
		return invalidConfig("PadD/PadH/PadW", fmt.Sprintf("%d/%d/%d", cfg.PadD, cfg.PadH, cfg.PadW), ">= 0")
	}

	// dropout never drops everything; augmentations may always apply
	ranges := []struct {
		field  string
		value  float64
		live   bool
		closed bool
	}{
		{"Dropout", cfg.Dropout, true, false},
		{"InputDropout", cfg.InputDropout, true, false},
		{"Cutout", cfg.Cutout, true, true},
		{"CutMix", cfg.CutMix, true, true},
		{"AutoAugment", cfg.AutoAugment, live.AutoAugment, true},
		{"Distortion", cfg.Distortion, true, true},
	}
	for _, r := range ranges {
		if !r.live {
			continue
		}
		if r.closed && (r.value < 0 || r.value > 1) {
			return invalidConfig(r.field, r.value, "in [0, 1]")
		}
		if !r.closed && (r.value < 0 || r.value >= 1) {
			return invalidConfig(r.field, r.value, "in [0, 1)")
		}
	}
	if live.ColorCast && cfg.ColorCast < 0 {
		return invalidConfig("ColorCast", cfg.ColorCast, ">= 0")
	}
	if live.Interpolation && (cfg.Interpolation < Cubic || cfg.Interpolation > Nearest) {
		return invalidArgument("RateConfig", "Interpolation", int(cfg.Interpolation))
	}
	if cfg.MaximumRate <= 0 {
		return invalidConfig("MaximumRate", cfg.MaximumRate, "> 0")
	}
	if cfg.MinimumRate < 0 || cfg.MinimumRate > cfg.MaximumRate {
		return invalidConfig("MinimumRate", cfg.MinimumRate, fmt.Sprintf("in [0, %g]", cfg.MaximumRate))
	}
	if cfg.Epochs <= 0 {
		return invalidConfig("Epochs", cfg.Epochs, "> 0")
	}
	return nil
}
