package trainpolicy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIfEmpty(t *testing.T) {
	cfg := DefaultRateConfig()
	cfg.Dropout = 0.2
	cfg.ColorCast = 3
	cfg.Interpolation = Nearest
	cfg.VerticalFlip = true

	var s StrategyStack
	e, seeded, err := s.SeedIfEmpty(cfg)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1.0, e.Weight)
	assert.NotEqual(t, uuid.Nil, e.ID)

	assert.Equal(t, cfg.N, e.N)
	assert.Equal(t, cfg.D, e.D)
	assert.Equal(t, cfg.PadH, e.PadH)
	assert.Equal(t, cfg.Momentum, e.Momentum)
	assert.Equal(t, cfg.L2Penalty, e.L2Penalty)
	assert.Equal(t, 0.2, e.Dropout)
	assert.Equal(t, 3, e.ColorCast)
	assert.Equal(t, Nearest, e.Interpolation)
	assert.True(t, e.VerticalFlip)
	assert.True(t, e.HorizontalFlip)

	again, seeded, err := s.SeedIfEmpty(DefaultRateConfig())
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, e, again)
	assert.Equal(t, 1, s.Len())
}

func TestSetEnabledSeeds(t *testing.T) {
	var s StrategyStack
	require.Error(t, (&StrategyStack{enabled: true}).Validate())

	require.NoError(t, s.SetEnabled(true, DefaultRateConfig()))
	assert.True(t, s.Enabled())
	assert.Equal(t, 1, s.Len())
	require.NoError(t, s.Validate())

	first := s.Entries()[0]
	require.NoError(t, s.SetEnabled(false, DefaultRateConfig()))
	require.NoError(t, s.SetEnabled(true, DefaultRateConfig()))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, first.ID, s.Entries()[0].ID)
}

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		ok      bool
	}{
		{name: "single full", weights: []float64{1}, ok: true},
		{name: "sum above one", weights: []float64{0.8, 0.8}, ok: true},
		{name: "zero", weights: []float64{0.5, 0}},
		{name: "negative", weights: []float64{-0.1}},
		{name: "above one", weights: []float64{1.01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]StrategyEntry, len(tt.weights))
			for i, w := range tt.weights {
				entries[i].Weight = w
			}
			_, err := RestoreStrategyStack(true, entries)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, IsKind(err, InvalidConfig))
		})
	}
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		total   int
		want    []int
	}{
		{name: "single", weights: []float64{1}, total: 60, want: []int{60}},
		{name: "fractions", weights: []float64{0.5, 0.25, 0.25}, total: 100, want: []int{50, 75, 100}},
		{name: "unnormalized", weights: []float64{1, 1}, total: 10, want: []int{5, 10}},
		{name: "rounding", weights: []float64{1, 1, 1}, total: 10, want: []int{3, 7, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]StrategyEntry, len(tt.weights))
			for i, w := range tt.weights {
				entries[i].Weight = w
			}
			s, err := RestoreStrategyStack(true, entries)
			require.NoError(t, err)
			got, err := s.Boundaries(tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActiveAt(t *testing.T) {
	entries := []StrategyEntry{{Weight: 0.5, Dropout: 0.1}, {Weight: 0.5, Dropout: 0.3}}
	s, err := RestoreStrategyStack(true, entries)
	require.NoError(t, err)

	i, e, err := s.ActiveAt(5, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 0.1, e.Dropout)

	i, e, err = s.ActiveAt(6, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, 0.3, e.Dropout)

	_, _, err = s.ActiveAt(11, 10)
	assert.True(t, IsKind(err, InvalidArgument))

	var empty StrategyStack
	_, _, err = empty.ActiveAt(1, 10)
	assert.True(t, IsKind(err, InvalidState))
}

func TestRestoreCopiesEntries(t *testing.T) {
	entries := []StrategyEntry{{Weight: 1}}
	s, err := RestoreStrategyStack(false, entries)
	require.NoError(t, err)
	entries[0].Weight = 5
	assert.Equal(t, 1.0, s.Entries()[0].Weight)
}
