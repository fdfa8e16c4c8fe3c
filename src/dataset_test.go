package trainpolicy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsColorDataset(t *testing.T) {
	grayscale := map[Dataset]bool{MNIST: true, FashionMNIST: true}
	for _, d := range AllDatasets() {
		t.Run(d.String(), func(t *testing.T) {
			got, err := IsColorDataset(d)
			require.NoError(t, err)
			assert.Equal(t, !grayscale[d], got)
		})
	}
}

func TestIsColorDatasetUnknown(t *testing.T) {
	_, err := IsColorDataset(Dataset(17))
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidArgument))
}

func TestParseDataset(t *testing.T) {
	tests := []struct {
		input string
		want  Dataset
	}{
		{"mnist", MNIST},
		{"fashion_mnist", FashionMNIST},
		{"FashionMNIST", FashionMNIST},
		{"CIFAR-10", CIFAR10},
		{"cifar100", CIFAR100},
		{"tiny-imagenet", TinyImageNet},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDataset(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDataset("imagenet")
	assert.True(t, IsKind(err, InvalidArgument))
}
