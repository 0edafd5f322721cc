package main

import (
	"fmt"
	"os"

	"moviebook/internal/di"
	"moviebook/internal/structures"
)

func main() {
	flags := structures.ParseFlags()
	if _, err := di.InitUserApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "user service failed: %s\n", err)
		os.Exit(1)
	}
}
