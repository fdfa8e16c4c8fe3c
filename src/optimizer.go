package trainpolicy

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Optimizer selects the gradient-descent variant of the training engine
type Optimizer int

const (
	SGD Optimizer = iota
	SGDMomentum
	SGDW
	NAG
	AdaGrad
	AdaDelta
	Adam
	AdamW
	Adamax
	RMSProp
	AdaBelief
	AdaBound
	AdaBoundW
	AmsBound
	AmsBoundW

	numOptimizers
)

var optimizerNames = [numOptimizers]string{
	SGD:         "SGD",
	SGDMomentum: "SGDMomentum",
	SGDW:        "SGDW",
	NAG:         "NAG",
	AdaGrad:     "AdaGrad",
	AdaDelta:    "AdaDelta",
	Adam:        "Adam",
	AdamW:       "AdamW",
	Adamax:      "Adamax",
	RMSProp:     "RMSProp",
	AdaBelief:   "AdaBelief",
	AdaBound:    "AdaBound",
	AdaBoundW:   "AdaBoundW",
	AmsBound:    "AmsBound",
	AmsBoundW:   "AmsBoundW",
}

func (o Optimizer) valid() bool { return o >= 0 && o < numOptimizers }

func (o Optimizer) String() string {
	if !o.valid() {
		return fmt.Sprintf("Optimizer(%d)", int(o))
	}
	return optimizerNames[o]
}

// AllOptimizers returns every optimizer in declaration order
func AllOptimizers() []Optimizer {
	out := make([]Optimizer, 0, numOptimizers)
	for o := Optimizer(0); o < numOptimizers; o++ {
		out = append(out, o)
	}
	return out
}

// ParseOptimizer accepts any casing or separator style: "adabound_w",
// "ada-bound-w" and "AdaBoundW" all name AdaBoundW.
func ParseOptimizer(name string) (Optimizer, error) {
	key := foldName(name)
	for o := Optimizer(0); o < numOptimizers; o++ {
		if foldName(optimizerNames[o]) == key {
			return o, nil
		}
	}
	return 0, invalidArgument("OptimizerPolicy", "Optimizer", name)
}

func foldName(name string) string {
	return strings.ToLower(strcase.ToCamel(strings.TrimSpace(name)))
}

// Applicability tells which auxiliary RateConfig parameters an optimizer reads
type Applicability struct {
	Momentum     bool
	L2Penalty    bool
	Beta2        bool
	BoundedDecay bool // gates Gamma and FinalRate
}

var optimizerTable = [numOptimizers]Applicability{
	SGD:         {Momentum: false, L2Penalty: true, Beta2: false, BoundedDecay: false},
	SGDMomentum: {Momentum: true, L2Penalty: true, Beta2: false, BoundedDecay: false},
	SGDW:        {Momentum: true, L2Penalty: true, Beta2: false, BoundedDecay: false},
	NAG:         {Momentum: true, L2Penalty: true, Beta2: false, BoundedDecay: false},
	AdaGrad:     {Momentum: false, L2Penalty: false, Beta2: false, BoundedDecay: false},
	AdaDelta:    {Momentum: false, L2Penalty: true, Beta2: false, BoundedDecay: false},
	Adam:        {Momentum: false, L2Penalty: false, Beta2: true, BoundedDecay: false},
	AdamW:       {Momentum: true, L2Penalty: true, Beta2: true, BoundedDecay: false},
	Adamax:      {Momentum: false, L2Penalty: false, Beta2: true, BoundedDecay: false},
	RMSProp:     {Momentum: false, L2Penalty: false, Beta2: true, BoundedDecay: false},
	AdaBelief:   {Momentum: false, L2Penalty: false, Beta2: true, BoundedDecay: false},
	AdaBound:    {Momentum: false, L2Penalty: false, Beta2: true, BoundedDecay: true},
	AdaBoundW:   {Momentum: true, L2Penalty: true, Beta2: true, BoundedDecay: true},
	AmsBound:    {Momentum: false, L2Penalty: false, Beta2: true, BoundedDecay: true},
	AmsBoundW:   {Momentum: true, L2Penalty: true, Beta2: true, BoundedDecay: true},
}

// OptimizerApplicability looks up which auxiliary parameters o uses
func OptimizerApplicability(o Optimizer) (Applicability, error) {
	if !o.valid() {
		return Applicability{}, invalidArgument("OptimizerPolicy", "Optimizer", int(o))
	}
	return optimizerTable[o], nil
}

// Family groups optimizers by the parameters they share
type Family int

const (
	// PlainGradient optimizers use neither momentum nor a second moment
	PlainGradient Family = iota
	// MomentumGradient optimizers use momentum but no second moment
	MomentumGradient
	// AdaptiveMoment optimizers track a second moment without step bounds
	AdaptiveMoment
	// BoundedAdaptive optimizers clamp the step between Gamma-driven bounds
	BoundedAdaptive
)

func (f Family) String() string {
	switch f {
	case PlainGradient:
		return "plain-gradient"
	case MomentumGradient:
		return "momentum-gradient"
	case AdaptiveMoment:
		return "adaptive-moment"
	case BoundedAdaptive:
		return "bounded-adaptive"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// FamilyOf classifies an applicability record
func FamilyOf(a Applicability) Family {
	switch {
	case a.BoundedDecay:
		return BoundedAdaptive
	case a.Beta2:
		return AdaptiveMoment
	case a.Momentum:
		return MomentumGradient
	default:
		return PlainGradient
	}
}

// OptimizerFamily returns the family o belongs to
func OptimizerFamily(o Optimizer) (Family, error) {
	a, err := OptimizerApplicability(o)
	if err != nil {
		return 0, err
	}
	return FamilyOf(a), nil
}
