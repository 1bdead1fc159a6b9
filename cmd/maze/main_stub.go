//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of escape-maze requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/maze` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless render use `go run ./cmd/maze-snapshot`.")
	os.Exit(2)
}
