package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := ""

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version", "-v", "version":
			fmt.Printf("color-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "--config", "-c":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--config requires a file path")
				os.Exit(2)
			}
			i++
			configPath = args[i]
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q (see --help)\n", args[i])
			os.Exit(2)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "color-tools-mcp: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout is for MCP protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	logger.Debug("starting color-tools-mcp",
		"version", Version, "built", BuildTime, "commit", GitCommit,
		"strict", cfg.Strict, "precision", cfg.Precision, "ocr_language", cfg.OCRLanguage)

	if Version != "dev" {
		server.Version = Version
	}
	srv := server.New(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("color-tools-mcp - MCP server for color conversion and accessibility checks")
	fmt.Println()
	fmt.Println("Usage: color-tools-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config, -c FILE  Read settings from a TOML file")
	fmt.Println("  --version, -v      Print version information")
	fmt.Println("  --help, -h         Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Printf("  %s=FILE       Settings file when --config is not given\n", config.EnvConfig)
	fmt.Printf("  %s=debug   Log level: debug, info, warn or error\n", config.EnvLogLevel)
	fmt.Printf("  %s=true       Reject out-of-range color components\n", config.EnvStrict)
	fmt.Printf("  %s=N       Output digits (-1 space default, -2 unrounded)\n", config.EnvPrecision)
	fmt.Printf("  %s=eng       Tesseract language for text contrast audits\n", config.EnvOCRLang)
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
