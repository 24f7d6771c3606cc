package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/iw2rmb/genkou"
	"github.com/iw2rmb/genkou/controller"
	"github.com/iw2rmb/genkou/editor"
	"github.com/iw2rmb/genkou/essay"
	"github.com/iw2rmb/genkou/transport"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString("genkou: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	opts, err := parseOptions(args, os.Getenv, os.Stderr)
	if err != nil {
		return err
	}
	if opts.showVersion {
		fmt.Println(genkou.BuildInfo("genkou"))
		return nil
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.logPath != "" {
		f, err := tea.LogToFile(opts.logPath, "genkou")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	ctl, err := newController(opts, logger)
	if err != nil {
		return err
	}

	a := newApp(ctl, editor.Config{
		Style:          editor.DefaultStyle(),
		ShowRowNumbers: true,
		ShowStats:      true,
		Clipboard:      systemClipboard{},
	}, opts.outDir, logger)

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// newController builds the controller with the configured submitter and
// loads the document named on the command line, if any.
func newController(opts options, logger *slog.Logger) (*controller.Controller, error) {
	cfg := controller.Config{
		CharsPerLine: opts.charsPerLine,
		GridMode:     true,
		Logger:       logger,
	}
	if opts.submitURL != "" {
		client, err := transport.NewClient(transport.ClientConfig{URL: opts.submitURL, Logger: logger})
		if err != nil {
			return nil, err
		}
		cfg.Submitter = client
	}

	ctl := controller.New(essay.New(), cfg)
	if opts.importPath == "" {
		return ctl, nil
	}
	f, err := os.Open(opts.importPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", essay.ErrUnreadableFile, err)
	}
	defer f.Close()
	if err := ctl.Import(f, essay.FormatForPath(opts.importPath)); err != nil {
		return nil, err
	}
	return ctl, nil
}
