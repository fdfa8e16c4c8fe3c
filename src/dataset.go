package trainpolicy

import "fmt"

// Dataset identifies the training data a model was built for
type Dataset int

const (
	MNIST Dataset = iota
	FashionMNIST
	CIFAR10
	CIFAR100
	TinyImageNet

	numDatasets
)

var datasetNames = [numDatasets]string{
	MNIST:        "mnist",
	FashionMNIST: "fashionmnist",
	CIFAR10:      "cifar10",
	CIFAR100:     "cifar100",
	TinyImageNet: "tinyimagenet",
}

// color datasets have three channels; the rest are grayscale
var colorTable = [numDatasets]bool{
	MNIST:        false,
	FashionMNIST: false,
	CIFAR10:      true,
	CIFAR100:     true,
	TinyImageNet: true,
}

func (d Dataset) valid() bool { return d >= 0 && d < numDatasets }

func (d Dataset) String() string {
	if !d.valid() {
		return fmt.Sprintf("Dataset(%d)", int(d))
	}
	return datasetNames[d]
}

// AllDatasets returns every dataset in declaration order
func AllDatasets() []Dataset {
	out := make([]Dataset, 0, numDatasets)
	for d := Dataset(0); d < numDatasets; d++ {
		out = append(out, d)
	}
	return out
}

// ParseDataset accepts "cifar10", "CIFAR-10", "fashion_mnist" and similar
func ParseDataset(name string) (Dataset, error) {
	key := foldName(name)
	for d := Dataset(0); d < numDatasets; d++ {
		if foldName(datasetNames[d]) == key {
			return d, nil
		}
	}
	return 0, invalidArgument("DatasetPolicy", "Dataset", name)
}

// IsColorDataset reports whether color-domain augmentation applies to d
func IsColorDataset(d Dataset) (bool, error) {
	if !d.valid() {
		return false, invalidArgument("DatasetPolicy", "Dataset", int(d))
	}
	return colorTable[d], nil
}
