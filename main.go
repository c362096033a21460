package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Lumos-Labs-HQ/storeseed/cmd"
	"github.com/Lumos-Labs-HQ/storeseed/internal/seeder"
	"github.com/fatih/color"
)

func main() {
	if err := cmd.Execute(); err != nil {
		red := color.New(color.FgRed, color.Bold)
		var se *seeder.StageError
		if errors.As(err, &se) {
			red.Fprintf(os.Stderr, "❌ Failed while %s (%s)\n", se.Stage, se.Kind)
			fmt.Fprintf(os.Stderr, "   %v\n", se.Err)
		} else {
			red.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		}
		os.Exit(1)
	}
}
