package usaddr

import (
	"errors"
	"fmt"
)

// ErrModelNotAvailable is returned by Parse and Tag when the parser was
// constructed without a usable sequence labeling model.
var ErrModelNotAvailable = errors.New("sequence labeling model not available")

// RepeatedLabelError reports that the labeler assigned the same label to two
// non-contiguous token runs. Components are keyed by label, so a label must
// cover a single contiguous run; a repeat indicates malformed input or a
// labeler misprediction and is not recoverable at this layer.
type RepeatedLabelError struct {
	// Input is the address string being tagged.
	Input string
	// Parsed is the full (token, label) sequence the labeler produced.
	Parsed []TaggedToken
	// Label is the label that reappeared after its run had closed.
	Label string
}

func (e *RepeatedLabelError) Error() string {
	return fmt.Sprintf("unable to tag %q: label %q applied to multiple non-contiguous token runs", e.Input, e.Label)
}
