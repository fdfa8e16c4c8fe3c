package trainpolicy

// Unlocked reports whether a gate parameter opens its dependent group
func Unlocked(gate float64) bool {
	return gate > 0.0
}

// Liveness tells which gated RateConfig fields take effect. Fields not listed
// here (N, H, W, padding, dropout knobs, flips, Epochs) are always live.
type Liveness struct {
	Depth bool // D and PadD are pinned while editing

	Momentum  bool
	Beta2     bool
	Gamma     bool
	FinalRate bool
	L2Penalty bool

	AutoAugment bool
	ColorCast   bool
	ColorAngle  bool

	Interpolation bool
	Rotation      bool
	Scaling       bool

	Cycles           bool
	EpochMultiplier  bool
	DecayFactor      bool
	DecayAfterEpochs bool
}

// EvaluateLiveness combines the optimizer and dataset tables with the gate
// rules into a single view of which fields matter.
func EvaluateLiveness(cfg RateConfig, dataset Dataset, cyclic bool) (Liveness, error) {
	opt, err := OptimizerApplicability(cfg.Optimizer)
	if err != nil {
		return Liveness{}, err
	}
	color, err := IsColorDataset(dataset)
	if err != nil {
		return Liveness{}, err
	}

	distorted := Unlocked(cfg.Distortion)
	live := Liveness{
		Momentum:  opt.Momentum,
		Beta2:     opt.Beta2,
		Gamma:     opt.BoundedDecay,
		FinalRate: opt.BoundedDecay,
		L2Penalty: opt.L2Penalty,

		AutoAugment: color,
		ColorCast:   color,
		ColorAngle:  color && Unlocked(float64(cfg.ColorCast)),

		Interpolation: distorted,
		Rotation:      distorted,
		Scaling:       distorted,

		Cycles:           cyclic,
		EpochMultiplier:  cyclic,
		DecayFactor:      !cyclic,
		DecayAfterEpochs: !cyclic,
	}
	debugf("liveness %s/%s cyclic=%v: disabled %v", cfg.Optimizer, dataset, cyclic, live.Disabled())
	return live, nil
}

// Disabled lists the RateConfig field names that are not live, in field order
func (l Liveness) Disabled() []string {
	fields := []struct {
		names []string
		live  bool
	}{
		{[]string{"D", "PadD"}, l.Depth},
		{[]string{"Momentum"}, l.Momentum},
		{[]string{"Beta2"}, l.Beta2},
		{[]string{"Gamma"}, l.Gamma},
		{[]string{"FinalRate"}, l.FinalRate},
		{[]string{"L2Penalty"}, l.L2Penalty},
		{[]string{"AutoAugment"}, l.AutoAugment},
		{[]string{"ColorCast"}, l.ColorCast},
		{[]string{"ColorAngle"}, l.ColorAngle},
		{[]string{"Interpolation"}, l.Interpolation},
		{[]string{"Rotation"}, l.Rotation},
		{[]string{"Scaling"}, l.Scaling},
		{[]string{"Cycles"}, l.Cycles},
		{[]string{"EpochMultiplier"}, l.EpochMultiplier},
		{[]string{"DecayFactor"}, l.DecayFactor},
		{[]string{"DecayAfterEpochs"}, l.DecayAfterEpochs},
	}
	var out []string
	for _, f := range fields {
		if !f.live {
			out = append(out, f.names...)
		}
	}
	return out
}
