package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corvess/albumforge/internal/build"
	"github.com/corvess/albumforge/internal/config"
	ioutils "github.com/corvess/albumforge/internal/io"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Albumforge - Build a tagged soundtrack album from game audio assets")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  albumforge [options] ASSETS_DIR OUTPUT_DIR")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "For interactive mode, use: albumforge-tui")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func main() {
	var (
		configFlag   = flag.String("config", "", "Path to config file")
		planFlag     = flag.String("plan", "", "Path to a JSON album plan (default: built-in album)")
		playlistFlag = flag.Bool("playlist", false, "Create playlist file")
		checkFlag    = flag.Bool("check", false, "Verify assets and exit without rendering")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag   = flag.Bool("dry-run", false, "Print renderer invocations without running them")
	)

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(1)
	}
	assetsDir := flag.Arg(0)
	outputDir := flag.Arg(1)

	// Prefer tool binaries shipped next to the assets over PATH ones.
	ioutils.PreferWorkingDirBinaries()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *planFlag != "" {
		settings.PlanFile = *planFlag
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := build.NewManager(settings, func(event build.ProgressEvent) {
		if event.Level == build.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case build.LevelError:
			prefix = "❌ "
		case build.LevelWarning:
			prefix = "⚠️  "
		case build.LevelSuccess:
			prefix = "✅ "
		case build.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})
	manager.SetDryRun(*dryRunFlag)

	fmt.Println("🎵 Albumforge")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if err := manager.Initialize(ctx, assetsDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving plan: %v\n", err)
		os.Exit(1)
	}

	if *checkFlag {
		if err := manager.Verify(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error verifying assets: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("\nAll assets verified.")
		return
	}

	fmt.Println("\n🔨 Rendering tracks...")
	fmt.Println()

	if err := manager.Run(ctx, outputDir); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nBuild cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during build: %v\n", err)
		os.Exit(1)
	}

	built, total := manager.Progress()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Built %d/%d tracks\n", built, total)
}
