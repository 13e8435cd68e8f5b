package main

import (
	"fmt"
	"os"

	"github.com/handiism/gallery-exporter/internal/cli"
	"github.com/handiism/gallery-exporter/internal/config"
	"github.com/handiism/gallery-exporter/internal/tui"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	settings := config.DefaultSettings()
	if path := os.Getenv(cli.ConfigEnv); path != "" {
		var err error
		settings, err = config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
