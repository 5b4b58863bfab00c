package fs2dt

import "context"

// Approver handles user interaction before existing sidecar files are replaced.
//
// Implementations:
//   - ForcedApprover: prints a notice and approves
//   - InteractiveApprover: prompts the user to type the confirmation word
type Approver interface {
	// RequestApproval asks for confirmation before overwriting existing sidecars.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - existing: Number of existing sidecars whose content would change
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, existing int) (bool, error)
}
