package trainpolicy

// ModelProperties are the structural facts the training engine reports
type ModelProperties struct {
	Dataset                Dataset
	UsesBatchNormalization bool
}

// Admission is the outcome of an accepted CheckStart
type Admission struct {
	MaxEpoch int
	Resume   *ResumePoint // normalized, nil on a fresh start
	Liveness Liveness
}

// CheckStart is the single gate in front of the training engine. Both fresh
// starts (resume == nil) and resumes pass through it. A rejection is always a
// *PolicyError naming the reason.
func CheckStart(cfg RateConfig, model ModelProperties, cyclic bool, resume *ResumePoint) (Admission, error) {
	live, err := EvaluateLiveness(cfg, model.Dataset, cyclic)
	if err != nil {
		return Admission{}, err
	}
	if err := ValidateRateConfig(cfg, live); err != nil {
		return Admission{}, err
	}
	if err := ValidateSchedule(cfg, cyclic); err != nil {
		return Admission{}, err
	}

	if model.UsesBatchNormalization && cfg.N == 1 {
		debugf("rejected start: batch norm with N=1")
		return Admission{}, &PolicyError{
			Component: "StartupGate",
			Kind:      BatchNormBatchSizeConflict,
			Field:     "N",
			Value:     "1",
			Expected:  "> 1",
			Cause:     "batch normalization needs more than one sample per batch",
		}
	}

	adm := Admission{
		MaxEpoch: MaxValidEpoch(cfg, cyclic),
		Liveness: live,
	}
	if resume != nil {
		rp, err := ValidateResume(*resume, cfg, cyclic)
		if err != nil {
			debugf("rejected resume: epoch %d of %d", resume.Epoch, adm.MaxEpoch)
			return Admission{}, err
		}
		adm.Resume = &rp
	}
	debugf("admitted %s on %s, %d epochs", cfg.Optimizer, model.Dataset, adm.MaxEpoch)
	return adm, nil
}
