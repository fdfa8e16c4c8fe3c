// Package trainpolicy decides what a training-rate configuration means before
// it is handed to a training engine.
//
// It answers three questions about a proposed configuration: which fields are
// live for the chosen optimizer and dataset, whether training may start or
// resume, and which epochs a schedule spans. Every decision is a pure function
// over values owned by the caller.
//
// Basic usage:
//
//	cfg := trainpolicy.DefaultRateConfig()
//	cfg.Optimizer = trainpolicy.AdaBoundW
//	cfg.Epochs, cfg.Cycles, cfg.EpochMultiplier = 10, 3, 2
//
//	live, err := trainpolicy.EvaluateLiveness(cfg, trainpolicy.CIFAR10, true)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(live.Disabled())
//
//	adm, err := trainpolicy.CheckStart(cfg, trainpolicy.ModelProperties{
//		Dataset:                trainpolicy.CIFAR10,
//		UsesBatchNormalization: true,
//	}, true, &trainpolicy.ResumePoint{Epoch: 42, Cycle: 3})
//	if trainpolicy.IsKind(err, trainpolicy.InvalidResumeEpoch) {
//		// ask the user for another epoch
//	}
//	fmt.Println(adm.MaxEpoch, adm.Resume.Cycle) // 60 1
package trainpolicy

import (
	"log"
	"os"
)

// Version of the trainpolicy library
const Version = "1.0.0"

// DebugMode enables verbose logging
var DebugMode = false

var logger = log.New(os.Stderr, "trainpolicy: ", log.LstdFlags)

// SetDebug enables or disables debug mode
func SetDebug(enabled bool) {
	DebugMode = enabled
}

// SetLogger replaces the debug logger. A nil logger restores stderr output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(os.Stderr, "trainpolicy: ", log.LstdFlags)
	}
	logger = l
}

func debugf(format string, args ...interface{}) {
	if !DebugMode {
		return
	}
	logger.Printf(format, args...)
}
