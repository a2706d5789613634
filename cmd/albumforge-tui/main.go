package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corvess/albumforge/internal/config"
	ioutils "github.com/corvess/albumforge/internal/io"
	"github.com/corvess/albumforge/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	ioutils.PreferWorkingDirBinaries()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
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
