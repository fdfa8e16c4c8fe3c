package trainpolicy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	batchNorm   bool
	dataset     Dataset
	useStrategy bool
	applied     []StrategyEntry
	applyErr    error
}

func (f *fakeEngine) UsesBatchNormalization() bool { return f.batchNorm }
func (f *fakeEngine) Dataset() Dataset             { return f.dataset }
func (f *fakeEngine) SetUseTrainingStrategy(enabled bool) {
	f.useStrategy = enabled
}

func (f *fakeEngine) ApplyTrainingStrategies(entries []StrategyEntry) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applied = entries
	return nil
}

func TestPropertiesOf(t *testing.T) {
	e := &fakeEngine{batchNorm: true, dataset: FashionMNIST}
	assert.Equal(t, ModelProperties{Dataset: FashionMNIST, UsesBatchNormalization: true}, PropertiesOf(e))
}

func TestApplyStrategies(t *testing.T) {
	e := &fakeEngine{}
	var s StrategyStack
	require.NoError(t, s.SetEnabled(true, DefaultRateConfig()))

	require.NoError(t, ApplyStrategies(e, &s))
	assert.True(t, e.useStrategy)
	assert.Len(t, e.applied, 1)

	require.NoError(t, s.SetEnabled(false, DefaultRateConfig()))
	e.applied = nil
	require.NoError(t, ApplyStrategies(e, &s))
	assert.False(t, e.useStrategy)
	assert.Nil(t, e.applied)
}

func TestApplyStrategiesEngineError(t *testing.T) {
	boom := errors.New("engine busy")
	e := &fakeEngine{applyErr: boom}
	var s StrategyStack
	require.NoError(t, s.SetEnabled(true, DefaultRateConfig()))

	err := ApplyStrategies(e, &s)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestApplyStrategiesInvalidStack(t *testing.T) {
	e := &fakeEngine{}
	s := &StrategyStack{enabled: true}
	err := ApplyStrategies(e, s)
	assert.True(t, IsKind(err, InvalidConfig))
	assert.False(t, e.useStrategy)
}
