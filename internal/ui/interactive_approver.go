package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It prompts the user to type "overwrite" before
// existing sidecars, which may hold darktable edits, are replaced.
type InteractiveApprover struct {
	input   io.Reader
	output  io.Writer
	verbose bool
}

// NewInteractiveApprover creates a new InteractiveApprover on stdin and stderr.
func NewInteractiveApprover(verbose bool) fs2dt.Approver {
	return &InteractiveApprover{input: os.Stdin, output: os.Stderr, verbose: verbose}
}

// RequestApproval prompts the user to type the confirmation word.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, existing int) (bool, error) {
	word := fs2dt.OverwriteConfirmation
	fmt.Fprintf(a.output, "\nWARNING: %d existing sidecar file(s) will be replaced.\n", existing)
	fmt.Fprintln(a.output, "Any darktable edits stored in them will be lost!")
	fmt.Fprintf(a.output, "\nTo confirm, type '%s' and press Enter: ", word)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == word {
			fmt.Fprintln(a.output, "✓ Confirmed. Writing sidecars...")
			return true, nil
		}
		fmt.Fprintf(a.output, "✗ Input '%s' does not match '%s'. Operation cancelled.\n", input, word)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ fs2dt.Approver = (*InteractiveApprover)(nil)
