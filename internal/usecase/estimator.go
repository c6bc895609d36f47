package usecase

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
)

// leafTag is the local name of the leaf-record element; one per output row
const leafTag = "upc"

// SizeEstimatorConfig holds configuration for the size estimator
type SizeEstimatorConfig struct {
	// EarlyExitThreshold stops the scan once the count exceeds it; the
	// partial count is returned and is already conclusive for the caller's
	// rejection decision. Default 1,200,000.
	EarlyExitThreshold int
}

// SizeEstimator counts <upc> elements with a streaming token scan so a
// pathologically large document can be rejected before it is ever loaded
// into memory as a tree.
type SizeEstimator struct {
	earlyExit int
}

// NewSizeEstimator creates a new size estimator
func NewSizeEstimator(config SizeEstimatorConfig) *SizeEstimator {
	threshold := config.EarlyExitThreshold
	if threshold == 0 {
		threshold = 1200000
	}
	return &SizeEstimator{earlyExit: threshold}
}

// Estimate returns the number of <upc> elements in the document at path.
// Tokens are not retained, so peak memory stays flat regardless of document
// size. An error means the count could not be determined; callers must fall
// through to the full parse rather than reject on that basis.
func (e *SizeEstimator) Estimate(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	decoder := xml.NewDecoder(file)
	count := 0
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return 0, err
		}

		// Tags are matched by local name; the schema carries no namespaces
		if end, ok := tok.(xml.EndElement); ok && end.Name.Local == leafTag {
			count++
			if count > e.earlyExit {
				return count, nil
			}
		}
	}
}
