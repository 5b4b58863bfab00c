package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

// ForcedApprover implements the Approver interface without asking. It is
// used with --force and whenever no terminal is attached.
type ForcedApprover struct {
	output  io.Writer
	verbose bool
}

// NewForcedApprover creates a new ForcedApprover writing its notice to stderr.
func NewForcedApprover(verbose bool) fs2dt.Approver {
	return &ForcedApprover{output: os.Stderr, verbose: verbose}
}

// RequestApproval reports how many sidecars will be replaced and approves.
func (a *ForcedApprover) RequestApproval(ctx context.Context, existing int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(a.output, "Replacing %d existing sidecar file(s) without confirmation.\n", existing)
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ fs2dt.Approver = (*ForcedApprover)(nil)
