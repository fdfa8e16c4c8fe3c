package trainpolicy

import (
	"fmt"
	"math"
)

// ResumePoint is the epoch and cycle a stopped run asks to continue from
type ResumePoint struct {
	Epoch int
	Cycle int
}

// Position locates an absolute epoch inside the schedule. Epochs and cycles
// are 1-based.
type Position struct {
	Epoch        int
	Cycle        int
	EpochInCycle int
	CycleLength  int
}

// ValidateSchedule checks the fields of the active schedule mode only
func ValidateSchedule(cfg RateConfig, cyclic bool) error {
	if cfg.Epochs <= 0 {
		return invalidConfig("Epochs", cfg.Epochs, "> 0")
	}
	if cyclic {
		if cfg.Cycles <= 0 {
			return invalidConfig("Cycles", cfg.Cycles, "> 0")
		}
		if cfg.EpochMultiplier <= 0 {
			return invalidConfig("EpochMultiplier", cfg.EpochMultiplier, "> 0")
		}
		return nil
	}
	if cfg.DecayFactor <= 0 || cfg.DecayFactor > 1 {
		return invalidConfig("DecayFactor", cfg.DecayFactor, "in (0, 1]")
	}
	if cfg.DecayAfterEpochs <= 0 {
		return invalidConfig("DecayAfterEpochs", cfg.DecayAfterEpochs, "> 0")
	}
	return nil
}

// MaxValidEpoch is the last epoch the schedule reaches.
// Cycles and EpochMultiplier are ignored in flat-decay mode.
func MaxValidEpoch(cfg RateConfig, cyclic bool) int {
	if cyclic {
		return cfg.Epochs * cfg.Cycles * cfg.EpochMultiplier
	}
	return cfg.Epochs
}

// ValidateResume accepts a resume point inside [1, MaxValidEpoch] and returns
// it with Cycle reset to 1; cycle counting always restarts at the first
// boundary after a resume.
func ValidateResume(rp ResumePoint, cfg RateConfig, cyclic bool) (ResumePoint, error) {
	if err := checkEpoch("ScheduleEngine", InvalidResumeEpoch, rp.Epoch, cfg, cyclic); err != nil {
		return ResumePoint{}, err
	}
	debugf("resume at epoch %d (requested cycle %d, using 1)", rp.Epoch, rp.Cycle)
	return ResumePoint{Epoch: rp.Epoch, Cycle: 1}, nil
}

func checkEpoch(component string, kind ErrorKind, epoch int, cfg RateConfig, cyclic bool) error {
	last := MaxValidEpoch(cfg, cyclic)
	if epoch >= 1 && epoch <= last {
		return nil
	}
	mode := "flat-decay"
	if cyclic {
		mode = "cyclic-restart"
	}
	return &PolicyError{
		Component: component,
		Kind:      kind,
		Field:     "Epoch",
		Value:     fmt.Sprint(epoch),
		Expected:  fmt.Sprintf("in [1, %d]", last),
		Cause:     fmt.Sprintf("epoch %d is outside the %d-epoch %s schedule", epoch, last, mode),
	}
}

// Locate maps an absolute epoch to its cycle. Every cycle spans
// Epochs*EpochMultiplier epochs, so Cycles cycles end exactly at MaxValidEpoch.
func Locate(cfg RateConfig, epoch int, cyclic bool) (Position, error) {
	if err := ValidateSchedule(cfg, cyclic); err != nil {
		return Position{}, err
	}
	if err := checkEpoch("ScheduleEngine", InvalidArgument, epoch, cfg, cyclic); err != nil {
		return Position{}, err
	}
	if !cyclic {
		return Position{Epoch: epoch, Cycle: 1, EpochInCycle: epoch, CycleLength: cfg.Epochs}, nil
	}
	length := cfg.Epochs * cfg.EpochMultiplier
	return Position{
		Epoch:        epoch,
		Cycle:        (epoch-1)/length + 1,
		EpochInCycle: (epoch-1)%length + 1,
		CycleLength:  length,
	}, nil
}

// schedule computes the learning rate in force at a position
type schedule interface {
	rate(pos Position) float64
	name() string
}

// warmRestarts - cosine annealing from MaximumRate to MinimumRate, restarting
// at every cycle boundary
type warmRestarts struct {
	etaMin float64
	etaMax float64
}

func (w warmRestarts) rate(pos Position) float64 {
	t := float64(pos.EpochInCycle - 1)
	return w.etaMin + 0.5*(w.etaMax-w.etaMin)*(1+math.Cos(math.Pi*t/float64(pos.CycleLength)))
}

func (w warmRestarts) name() string { return "warm_restarts" }

// stepDecay - drops the rate by DecayFactor every DecayAfterEpochs epochs
type stepDecay struct {
	initial  float64
	gamma    float64
	stepSize int
}

func (s stepDecay) rate(pos Position) float64 {
	return s.initial * math.Pow(s.gamma, float64((pos.Epoch-1)/s.stepSize))
}

func (s stepDecay) name() string { return "step_decay" }

func scheduleFor(cfg RateConfig, cyclic bool) schedule {
	if cyclic {
		return warmRestarts{etaMin: cfg.MinimumRate, etaMax: cfg.MaximumRate}
	}
	return stepDecay{initial: cfg.MaximumRate, gamma: cfg.DecayFactor, stepSize: cfg.DecayAfterEpochs}
}

// RateAt returns the learning rate the schedule prescribes for epoch
func RateAt(cfg RateConfig, epoch int, cyclic bool) (float64, error) {
	pos, err := Locate(cfg, epoch, cyclic)
	if err != nil {
		return 0, err
	}
	s := scheduleFor(cfg, cyclic)
	r := s.rate(pos)
	debugf("%s epoch %d (cycle %d) rate %g", s.name(), epoch, pos.Cycle, r)
	return r, nil
}
