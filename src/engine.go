package trainpolicy

// Engine is the training engine this package gates. It owns the model and
// performs the actual optimization.
type Engine interface {
	UsesBatchNormalization() bool
	Dataset() Dataset
	ApplyTrainingStrategies(entries []StrategyEntry) error
	SetUseTrainingStrategy(enabled bool)
}

// PropertiesOf reads the model facts CheckStart needs
func PropertiesOf(e Engine) ModelProperties {
	return ModelProperties{
		Dataset:                e.Dataset(),
		UsesBatchNormalization: e.UsesBatchNormalization(),
	}
}

// ApplyStrategies validates the stack and hands it to the engine. A disabled
// stack only switches strategy mode off.
func ApplyStrategies(e Engine, stack *StrategyStack) error {
	if err := stack.Validate(); err != nil {
		return err
	}
	e.SetUseTrainingStrategy(stack.Enabled())
	if !stack.Enabled() {
		return nil
	}
	if err := e.ApplyTrainingStrategies(stack.Entries()); err != nil {
		return errorf("apply %d strategies: %w", stack.Len(), err)
	}
	return nil
}
