package main

import (
	"fmt"
	"os"

	"moviebook/internal/di"
	"moviebook/internal/structures"
)

func main() {
	flags := structures.ParseFlags()
	if _, err := di.InitBookingApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "booking service failed: %s\n", err)
		os.Exit(1)
	}
}
