package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/Pulkitsaraswat52/facegate/config"
	"github.com/Pulkitsaraswat52/facegate/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	logger := bootstrap.InitLogger(cfg.Observability)

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"entries-list": {
			name:        "entries-list",
			description: "List entries visible to the given credentials",
			run:         runEntriesList,
		},
		"entry-add": {
			name:        "entry-add",
			description: "Create an entry (admin credentials required)",
			run:         runEntryAdd,
		},
		"entry-update": {
			name:        "entry-update",
			description: "Rewrite an entry's data (admin credentials required)",
			run:         runEntryUpdate,
		},
		"entry-delete": {
			name:        "entry-delete",
			description: "Delete an entry (admin credentials required)",
			run:         runEntryDelete,
		},
		"faces-list": {
			name:        "faces-list",
			description: "List registered faces",
			run:         runFacesList,
		},
		"google-login": {
			name:        "google-login",
			description: "Headless Google authorization-code login",
			run:         runGoogleLogin,
		},
		"profile-latest": {
			name:        "profile-latest",
			description: "Show the most recently cached third-party profile",
			run:         runProfileLatest,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: facegate-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	names := make([]string, 0, len(commands()))
	for name := range commands() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := commands()[name]
		if err := writef(os.Stdout, "  %-16s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
