package analysis

import "time"

// Category labels passed to a Recorder.
const (
	CategoryMST  = "mst"
	CategoryAPSP = "apsp"
	CategorySSSP = "sssp"
)

// Recorder observes algorithm runs. Implementations must be cheap; they are
// called synchronously between runs. See package metrics for a Prometheus one.
type Recorder interface {
	// ObserveRun is called once per executed algorithm with its elapsed time
	// and error (nil on success).
	ObserveRun(category, algorithm string, elapsed time.Duration, err error)

	// ObserveFallback is called when a category selects its alternative
	// because the recommended algorithm failed.
	ObserveFallback(category string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRun(string, string, time.Duration, error) {}
func (nopRecorder) ObserveFallback(string)                         {}
