package train

import "fmt"

// progressInterval is how many epochs elapse between progress reports.
const progressInterval = 10

// ProgressFunc observes a training run. The trainer invokes it every
// progressInterval epochs with the metrics of the epoch just finished.
type ProgressFunc func(epoch, totalEpochs int, loss, accuracy float64)

// LogProgress is a ready-made ProgressFunc that writes one line per
// report to standard output. The example binaries use it; library
// callers usually inject their own observer.
func LogProgress(epoch, totalEpochs int, loss, accuracy float64) {
	fmt.Printf("epoch %d/%d: loss=%.4f accuracy=%.2f%%\n", epoch, totalEpochs, loss, accuracy*100)
}
