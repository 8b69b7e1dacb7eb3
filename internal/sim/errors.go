package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/termresume/internal/physics"
)

// Domain errors for headless runs.
var (
	// ErrInvalidConfig is wrapped by every run configuration failure.
	ErrInvalidConfig = errors.New("sim: invalid run configuration")

	// ErrUnstable indicates a node position or velocity became NaN or Inf.
	ErrUnstable = errors.New("sim: graph unstable (NaN or Inf detected)")
)

// SimulationError wraps an error with the frame and node it occurred at.
type SimulationError struct {
	Frame   int
	NodeID  string
	Wrapped error
}

func (e *SimulationError) Error() string {
	if e.NodeID == "" {
		return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
	}
	return fmt.Sprintf("frame %d, node %q: %v", e.Frame, e.NodeID, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

// checkFinite returns a *SimulationError for the first non-finite node.
func checkFinite(frame int, g *physics.Graph) error {
	for _, n := range g.Nodes() {
		for _, v := range [...]float64{n.X, n.Y, n.VX, n.VY} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &SimulationError{Frame: frame, NodeID: n.ID, Wrapped: ErrUnstable}
			}
		}
	}
	return nil
}
