// onepage renders a YAML content script as a single-page PDF.
//
// With no -config it renders the built-in summary document. The absolute
// path of the written file is printed on success.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	pdf "github.com/ScriptRock/textpdf"
	"github.com/ScriptRock/textpdf/config"
)

func main() {
	configPath := flag.String("config", "", "Content script (YAML); the built-in summary if empty")
	out := flag.String("out", filepath.Join("output", "pdf", "summary.pdf"), "Output file")
	verify := flag.Bool("verify", false, "Read the written file back and check its cross-reference table")
	initConfig := flag.String("init", "", "Write the default content script to this path and exit")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *initConfig != "" {
		if err := config.Default().Save(*initConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config initialized at: %s\n", *initConfig)
		os.Exit(0)
	}

	path, err := run(*configPath, *out, *verify, logger)
	if err != nil {
		var overflow *pdf.OverflowError
		if errors.As(err, &overflow) {
			logger.Error("content does not fit the page", slog.Float64("y", overflow.Cursor), slog.Float64("bottom", overflow.Bottom))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(path)
}

func run(configPath, out string, verify bool, logger *slog.Logger) (string, error) {
	doc, err := config.LoadOrDefault(configPath)
	if err != nil {
		return "", err
	}
	opts, err := doc.Options()
	if err != nil {
		return "", err
	}
	opts.Logger = logger

	data, err := pdf.Encode(doc.StyledLines(), opts)
	if err != nil {
		return "", err
	}
	if err := pdf.WriteFile(out, data); err != nil {
		return "", err
	}
	logger.Debug("wrote document", slog.String("path", out), slog.Int("bytes", len(data)))

	if verify {
		written, err := os.ReadFile(out)
		if err != nil {
			return "", fmt.Errorf("failed to reread %s: %w", out, err)
		}
		if err := pdf.Verify(written); err != nil {
			return "", fmt.Errorf("verify %s: %w", out, err)
		}
		logger.Debug("verified cross-reference table", slog.String("path", out))
	}

	return filepath.Abs(out)
}
