package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.abhg.dev/git-mergepr/internal/git"
	"go.abhg.dev/git-mergepr/internal/handler/merge"
	"go.abhg.dev/git-mergepr/internal/text"
	"go.abhg.dev/git-mergepr/internal/ui"
	"go.abhg.dev/log/silog"
)

type mainCmd struct {
	Version versionFlag `help:"Print version information and quit"`

	Verbose        bool   `short:"v" env:"GIT_MERGEPR_VERBOSE" help:"Log additional output"`
	Dir            string `short:"C" placeholder:"DIR" type:"existingdir" help:"Change to DIR before doing anything"`
	NonInteractive bool   `name:"non-interactive" short:"I" default:"${nonInteractive}" help:"Disable interactive prompts"`

	Target    string `name:"target-branch" short:"t" default:"master" placeholder:"BRANCH" help:"Branch the pull request merges into"`
	Remote    string `short:"r" default:"origin" placeholder:"NAME" help:"Remote to fetch from and push to"`
	Message   string `short:"m" placeholder:"MSG" help:"Use the given message as the squashed commit message"`
	AssumeYes bool   `name:"assume-yes" short:"y" help:"Answer yes to all confirmation prompts"`
}

func (*mainCmd) Help() string {
	return text.Dedent(`
		Run from the feature branch whose pull request was approved.
		The branch's commits are squashed into a single commit,
		rebased on top of the target branch, and pushed to both
		the feature branch and the target branch.
		The code host recognizes the result and marks the
		pull request as merged.

		Branches with a single commit are rebased without squashing.
		Use the -m/--message flag to set the commit message of the
		squashed commit without prompting.
	`)
}

func (cmd *mainCmd) AfterApply() error {
	if cmd.Dir != "" {
		if err := os.Chdir(cmd.Dir); err != nil {
			return fmt.Errorf("change directory: %w", err)
		}
	}
	return nil
}

func (cmd *mainCmd) Run(ctx context.Context, log *silog.Logger) error {
	if cmd.Verbose {
		log.SetLevel(silog.LevelDebug)
	}

	if _, err := exec.LookPath("git"); err != nil {
		return errors.New("git was not found on PATH")
	}

	var view ui.View
	if cmd.NonInteractive {
		view = &ui.FileView{W: os.Stderr}
	} else {
		view = &ui.TerminalView{R: os.Stdin, W: os.Stderr}
	}

	repo, err := git.Open(ctx, ".", git.OpenOptions{Log: log})
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}

	handler := &merge.Handler{
		Log:        log,
		Repository: repo,
		View:       view,
	}
	return handler.MergeBranch(ctx, &merge.Request{
		TargetBranch: cmd.Target,
		Remote:       cmd.Remote,
		Message:      cmd.Message,
		AssumeYes:    cmd.AssumeYes,
	})
}
