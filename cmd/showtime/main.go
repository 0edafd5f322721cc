package main

import (
	"fmt"
	"os"

	"moviebook/internal/di"
	"moviebook/internal/structures"
)

func main() {
	flags := structures.ParseFlags()
	if _, err := di.InitShowtimeApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "showtime service failed: %s\n", err)
		os.Exit(1)
	}
}
