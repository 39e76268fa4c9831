package protocol

import "errors"

// Depth limits against stack exhaustion from deeply nested input.
const (
	// MaxNodeDepth limits the nesting depth of decoded trees.
	MaxNodeDepth = 256

	// MaxPatchDepth limits the nesting depth of decoded scripts. Nodes
	// carried by REPLACE and ADD are checked against MaxNodeDepth.
	MaxPatchDepth = 256
)

// ErrMaxDepthExceeded is returned when decoded input nests too deeply.
var ErrMaxDepthExceeded = errors.New("protocol: maximum nesting depth exceeded")

func checkDepth(current, max int) error {
	if current > max {
		return ErrMaxDepthExceeded
	}
	return nil
}
