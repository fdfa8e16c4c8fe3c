package trainpolicy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyErrorFormat(t *testing.T) {
	err := &PolicyError{
		Component: "StartupGate",
		Kind:      BatchNormBatchSizeConflict,
		Field:     "N",
		Value:     "1",
		Expected:  "> 1",
		Cause:     "batch normalization needs more than one sample per batch",
	}
	assert.Equal(t, "trainpolicy: StartupGate batch norm batch size conflict on N\n"+
		"  value:    1\n"+
		"  expected: > 1\n"+
		"  cause:    batch normalization needs more than one sample per batch", err.Error())
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("start rejected: %w", &PolicyError{Kind: InvalidResumeEpoch})
	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, InvalidResumeEpoch, kind)
	assert.True(t, IsKind(wrapped, InvalidResumeEpoch))
	assert.False(t, IsKind(wrapped, InvalidConfig))

	_, ok = KindOf(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestErrorKind(t *testing.T) {
	assert.False(t, InvalidArgument.UserRecoverable())
	assert.True(t, BatchNormBatchSizeConflict.UserRecoverable())
	assert.True(t, InvalidResumeEpoch.UserRecoverable())
	assert.Equal(t, "invalid resume epoch", InvalidResumeEpoch.String())
	assert.Equal(t, "ErrorKind(12)", ErrorKind(12).String())
}
