package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chmouel/gz/internal/app"
	"github.com/chmouel/gz/internal/buildinfo"
	"github.com/chmouel/gz/internal/cli"
	"github.com/chmouel/gz/internal/config"
	"github.com/chmouel/gz/internal/git"
	"github.com/chmouel/gz/internal/log"
	appiCli "github.com/urfave/cli/v3"
	"golang.org/x/term"
)

var (
	openWorkspaceFunc = openWorkspace
	runStagingFunc    = func(ctx context.Context, repo *git.Repository, cfg *config.AppConfig) error {
		return app.Run(ctx, repo, cfg)
	}
	isTerminalFunc = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
)

// openWorkspace locates the repository around the working directory and loads
// its gz settings. A broken configuration falls back to the defaults.
func openWorkspace(ctx context.Context) (*git.Repository, *config.AppConfig, error) {
	runner := git.NewClient()
	repo, err := git.Open(ctx, runner, ".")
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadConfig(ctx, runner, repo.Root())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
	if err := log.Configure(cfg.DebugLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", cfg.DebugLog, err)
	}
	return repo, cfg, nil
}

func newRootCommand() *appiCli.Command {
	return &appiCli.Command{
		Name:                  "gz",
		Usage:                 "Shortcuts for everyday git workflows",
		Version:               buildinfo.Current().String(),
		EnableShellCompletion: true,
		Commands: []*appiCli.Command{
			syncCommand(),
			stashCommand(),
			uncommitCommand(),
			branchCommand(),
			addCommand(),
			doneCommand(),
		},
	}
}

// withWorkspace opens the repository before running action.
func withWorkspace(action func(ctx context.Context, cmd *appiCli.Command, repo *git.Repository, cfg *config.AppConfig) error) appiCli.ActionFunc {
	return func(ctx context.Context, cmd *appiCli.Command) error {
		repo, cfg, err := openWorkspaceFunc(ctx)
		if err != nil {
			return err
		}
		log.Printf("command: %s", cmd.Name)
		return action(ctx, cmd, repo, cfg)
	}
}

func syncCommand() *appiCli.Command {
	return &appiCli.Command{
		Name:  "sync",
		Usage: "Update the current branch from the remote",
		Flags: []appiCli.Flag{
			&appiCli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Discard local commits and reset onto the remote branch",
			},
		},
		Action: withWorkspace(func(ctx context.Context, cmd *appiCli.Command, repo *git.Repository, cfg *config.AppConfig) error {
			return cli.Sync(ctx, repo, cfg, cmd.Bool("force"))
		}),
	}
}

func stashCommand() *appiCli.Command {
	return &appiCli.Command{
		Name:  "stash",
		Usage: "Stash all changes including untracked files",
		Action: withWorkspace(func(ctx context.Context, _ *appiCli.Command, repo *git.Repository, _ *config.AppConfig) error {
			return cli.Stash(ctx, repo)
		}),
	}
}

func uncommitCommand() *appiCli.Command {
	return &appiCli.Command{
		Name:      "uncommit",
		Usage:     "Undo the last commits and keep their changes",
		ArgsUsage: "[count]",
		Action: withWorkspace(func(ctx context.Context, cmd *appiCli.Command, repo *git.Repository, _ *config.AppConfig) error {
			return cli.Uncommit(ctx, repo, cli.ParseCount(cmd.Args().First()))
		}),
	}
}

func branchCommand() *appiCli.Command {
	return &appiCli.Command{
		Name:      "branch",
		Usage:     "Create a branch and switch to it",
		ArgsUsage: "<name>",
		Action: func(ctx context.Context, cmd *appiCli.Command) error {
			if cmd.NArg() == 0 {
				return fmt.Errorf("usage: gz branch <name>")
			}
			return withWorkspace(func(ctx context.Context, cmd *appiCli.Command, repo *git.Repository, _ *config.AppConfig) error {
				return cli.Branch(ctx, repo, cmd.Args().First())
			})(ctx, cmd)
		},
	}
}

func addCommand() *appiCli.Command {
	return &appiCli.Command{
		Name:  "add",
		Usage: "Stage and unstage changes interactively",
		Action: func(ctx context.Context, cmd *appiCli.Command) error {
			if !isTerminalFunc() {
				return fmt.Errorf("gz add needs an interactive terminal")
			}
			return withWorkspace(func(ctx context.Context, _ *appiCli.Command, repo *git.Repository, cfg *config.AppConfig) error {
				return runStagingFunc(ctx, repo, cfg)
			})(ctx, cmd)
		},
	}
}

func doneCommand() *appiCli.Command {
	return &appiCli.Command{
		Name:  "done",
		Usage: "Delete the current branch and return to the main branch",
		Action: withWorkspace(func(ctx context.Context, _ *appiCli.Command, repo *git.Repository, cfg *config.AppConfig) error {
			return cli.Done(ctx, repo, cfg)
		}),
	}
}
