package main

import (
	"fmt"
	"os"
	"runtime/debug"
	_ "time/tzdata"

	"github.com/fs2dt/fs2dt/internal/cli"
	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(fs2dt.ExitPanic)
		}
	}()

	if os.Getenv("FS2DT_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(fs2dt.ExitCodeForError(err))
	}
}
