// Command yat turns audio files and YouTube videos into
// speaker-attributed transcripts, answers questions about them, and
// serves the pipeline over HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
