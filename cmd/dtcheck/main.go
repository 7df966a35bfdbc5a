package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// A canceled scan already logged its state; only real failures get
		// a line on stderr.
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "dtcheck: %v\n", err)
		}
		os.Exit(1)
	}
}
