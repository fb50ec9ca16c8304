package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/texforge/ctex-extract/internal/config"
	"github.com/texforge/ctex-extract/internal/report"
	"github.com/texforge/ctex-extract/pkg/logging"
)

const version = "0.1.0"

var (
	outputDir   string
	logLevel    string
	configPath  string
	strictExit  bool
	versionFlag bool
	rootCmd     *cobra.Command
)

func buildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "ctex-extract [directory]",
		Short: "Extract images from Godot 4.x CTEX texture containers",
		Long: `Extract images from Godot 4.x CTEX texture containers.

Walks the given directory (default: the current directory) recursively,
converts every .ctex file found, and writes each embedded image payload
next to its container with the extension matching its real encoding.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConvert,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Write extracted images under this directory instead of beside their containers")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: ctex.toml if present)")
	rootCmd.Flags().BoolVar(&strictExit, "strict", false, "Exit nonzero when any file fails to convert")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(newInspectCommand())
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("ctex-extract %s\n", version)
		fmt.Printf("Built: %s\n", buildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	path := configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, err
	}

	// Flags and environment override the config file.
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if level := os.Getenv("CTEX_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if strictExit {
		cfg.Strict = true
	}

	return cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Printf("ctex-extract %s\n", version)
		fmt.Printf("Built: %s\n", buildTimestamp())
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	if root == "." {
		if cwd, err := os.Getwd(); err == nil {
			root = cwd
		}
	}

	logger := logging.NewLogger("ctex-extract", cfg.LogLevel, os.Stderr)

	runner := &report.Runner{
		Root:      root,
		OutputDir: cfg.OutputDir,
		Out:       os.Stdout,
		Logger:    logger,
	}

	summary, err := runner.Run()
	if err != nil {
		return err
	}

	if cfg.Strict && summary.Failed > 0 {
		os.Exit(1)
	}

	return nil
}
