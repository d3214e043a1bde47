// mkicon writes a single square app icon PNG from the moonicon package.
// Usage: go run ./cmd/mkicon <output.png> [size]
package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"strconv"

	"github.com/clickaround/sadam-tools/internal/moonicon"
	"github.com/clickaround/sadam-tools/internal/paths"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: mkicon <output.png> [size]")
		os.Exit(1)
	}
	size := 256
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "Error: size must be a positive integer\n")
			os.Exit(1)
		}
		size = n
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, moonicon.Draw(size)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := paths.AtomicWrite(os.Args[1], buf.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
