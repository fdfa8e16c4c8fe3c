package trainpolicy

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gonum.org/v1/gonum/floats"
)

// StrategyEntry is a weighted snapshot of the regularization and augmentation
// fields, in force for Weight of the total epochs.
type StrategyEntry struct {
	ID     uuid.UUID
	Weight float64

	N    int
	D    int
	H    int
	W    int
	PadD int
	PadH int
	PadW int

	Momentum  float64
	Beta2     float64
	Gamma     float64
	L2Penalty float64

	Dropout        float64
	HorizontalFlip bool
	VerticalFlip   bool
	InputDropout   float64
	Cutout         float64
	CutMix         float64

	AutoAugment   float64
	ColorCast     int
	ColorAngle    float64
	Distortion    float64
	Interpolation Interpolation
	Scaling       float64
	Rotation      float64
}

// NewStrategyEntry snapshots cfg with the given weight
func NewStrategyEntry(cfg RateConfig, weight float64) (StrategyEntry, error) {
	var e StrategyEntry
	if err := copier.Copy(&e, &cfg); err != nil {
		return StrategyEntry{}, errorf("snapshot strategy: %w", err)
	}
	e.ID = uuid.New()
	e.Weight = weight
	return e, nil
}

// StrategyStack is the ordered list of strategies applied across training.
// Order defines the sequence of epoch boundaries.
type StrategyStack struct {
	enabled bool
	entries []StrategyEntry
}

// RestoreStrategyStack rebuilds a persisted stack and checks its invariants
func RestoreStrategyStack(enabled bool, entries []StrategyEntry) (*StrategyStack, error) {
	s := &StrategyStack{enabled: enabled, entries: append([]StrategyEntry(nil), entries...)}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *StrategyStack) Len() int      { return len(s.entries) }
func (s *StrategyStack) Enabled() bool { return s.enabled }

// Entries returns a copy of the stack in application order
func (s *StrategyStack) Entries() []StrategyEntry {
	return append([]StrategyEntry(nil), s.entries...)
}

// SeedIfEmpty puts a single weight-1 snapshot of cfg on an empty stack.
// On a non-empty stack it does nothing and returns the first entry and false.
func (s *StrategyStack) SeedIfEmpty(cfg RateConfig) (StrategyEntry, bool, error) {
	if len(s.entries) > 0 {
		return s.entries[0], false, nil
	}
	e, err := NewStrategyEntry(cfg, 1.0)
	if err != nil {
		return StrategyEntry{}, false, err
	}
	s.entries = []StrategyEntry{e}
	debugf("seeded strategy stack with %s", e.ID)
	return e, true, nil
}

// SetEnabled toggles strategy mode. Enabling seeds an empty stack from cfg so
// an enabled stack is never empty.
func (s *StrategyStack) SetEnabled(enabled bool, cfg RateConfig) error {
	if enabled {
		if _, _, err := s.SeedIfEmpty(cfg); err != nil {
			return err
		}
	}
	s.enabled = enabled
	return nil
}

// Validate checks every weight lies in (0, 1] and an enabled stack is not empty
func (s *StrategyStack) Validate() error {
	if s.enabled && len(s.entries) == 0 {
		return &PolicyError{
			Component: "StrategyStack",
			Kind:      InvalidConfig,
			Cause:     "strategy mode is enabled but the stack is empty",
		}
	}
	for i, e := range s.entries {
		if e.Weight <= 0 || e.Weight > 1 || math.IsNaN(e.Weight) {
			return &PolicyError{
				Component: "StrategyStack",
				Kind:      InvalidConfig,
				Field:     fmt.Sprintf("entries[%d].Weight", i),
				Value:     fmt.Sprint(e.Weight),
				Expected:  "in (0, 1]",
				Cause:     "strategy weight is a fraction of the total epochs",
			}
		}
	}
	return nil
}

// Boundaries returns the last epoch of each entry for a run of totalEpochs.
// Weights need not sum to 1; each entry gets its share of the cumulative sum.
func (s *StrategyStack) Boundaries(totalEpochs int) ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(s.entries) == 0 {
		return nil, nil
	}
	if totalEpochs <= 0 {
		return nil, invalidConfig("Epochs", totalEpochs, "> 0")
	}

	weights := make([]float64, len(s.entries))
	for i, e := range s.entries {
		weights[i] = e.Weight
	}
	cum := floats.CumSum(make([]float64, len(weights)), weights)
	total := cum[len(cum)-1]

	out := make([]int, len(cum))
	for i, c := range cum {
		out[i] = int(math.Round(float64(totalEpochs) * c / total))
	}
	out[len(out)-1] = totalEpochs
	return out, nil
}

// ActiveAt returns the index and entry in force at a 1-based epoch
func (s *StrategyStack) ActiveAt(epoch, totalEpochs int) (int, StrategyEntry, error) {
	bounds, err := s.Boundaries(totalEpochs)
	if err != nil {
		return -1, StrategyEntry{}, err
	}
	if len(bounds) == 0 {
		return -1, StrategyEntry{}, &PolicyError{
			Component: "StrategyStack",
			Kind:      InvalidState,
			Cause:     "no strategies on the stack",
		}
	}
	if epoch < 1 || epoch > totalEpochs {
		return -1, StrategyEntry{}, invalidArgument("StrategyStack", "Epoch", epoch)
	}
	for i, b := range bounds {
		if epoch <= b {
			return i, s.entries[i], nil
		}
	}
	return len(bounds) - 1, s.entries[len(bounds)-1], nil
}
