// Package merge implements the pull request merge workflow:
// squash the feature branch's commits,
// rebase them on top of the target branch,
// and push the result to both branches
// so that the code host recognizes the pull request as merged.
package merge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.abhg.dev/git-mergepr/internal/git"
	"go.abhg.dev/git-mergepr/internal/ui"
	"go.abhg.dev/log/silog"
)

//go:generate mockgen -package merge -destination mocks_test.go . GitRepository

// GitRepository provides access to the Git repository being merged.
type GitRepository interface {
	CurrentBranch(ctx context.Context) (string, error)
	Head(ctx context.Context) (git.Hash, error)
	PeelToCommit(ctx context.Context, ref string) (git.Hash, error)
	CommitMessage(ctx context.Context, commitish string) (string, error)
	ListLeftRight(ctx context.Context, left, right string) ([]git.LeftRightCommit, error)

	Fetch(ctx context.Context, opts git.FetchOptions) error
	Rebase(ctx context.Context, req git.RebaseRequest) error
	Merge(ctx context.Context, req git.MergeRequest) error
	Reset(ctx context.Context, commit string, opts git.ResetOptions) error
	Commit(ctx context.Context, req git.CommitRequest) error
	Push(ctx context.Context, opts git.PushOptions) error
	Checkout(ctx context.Context, branch string) error
	Pull(ctx context.Context, opts git.PullOptions) error
	DeleteBranch(ctx context.Context, branch string, opts git.BranchDeleteOptions) error
}

var _ GitRepository = (*git.Repository)(nil)

// Handler handles the merge workflow.
type Handler struct {
	Log        *silog.Logger // required
	Repository GitRepository // required
	View       ui.View       // required
}

// Request holds the parameters for a merge.
type Request struct {
	// TargetBranch is the branch the pull request merges into.
	TargetBranch string // required

	// Remote is the name of the remote to merge against.
	Remote string // required

	// Message is the commit message for the squashed commit.
	// If empty, the user is prompted to re-use the message
	// of the branch's first commit, or to write a new one.
	Message string

	// AssumeYes answers yes to all confirmation prompts.
	AssumeYes bool
}

// MergeBranch merges the currently checked out branch
// into the target branch.
func (h *Handler) MergeBranch(ctx context.Context, req *Request) error {
	featureBranch, err := h.Repository.CurrentBranch(ctx)
	if err != nil {
		return fmt.Errorf("get current branch: %w", err)
	}

	targetHash, err := h.Repository.PeelToCommit(ctx, req.TargetBranch)
	if err != nil {
		return fmt.Errorf("resolve %v: %w", req.TargetBranch, err)
	}

	featureHash, err := h.Repository.PeelToCommit(ctx, featureBranch)
	if err != nil {
		return fmt.Errorf("resolve %v: %w", featureBranch, err)
	}

	if targetHash == featureHash {
		return errors.New("target branch and HEAD point to the same ref: " +
			"make sure you are on your feature branch")
	}

	h.Log.Infof("Merging pull request for %v into %v", featureBranch, req.TargetBranch)

	h.Log.Info("Fetching upstream changes", "remote", req.Remote)
	if err := h.Repository.Fetch(ctx, git.FetchOptions{Remote: req.Remote}); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	remoteTarget := req.Remote + "/" + req.TargetBranch

	// The '...' range accounts for merges of the target branch
	// into the feature branch.
	commits, err := h.Repository.ListLeftRight(ctx, "HEAD", remoteTarget)
	if err != nil {
		return fmt.Errorf("list divergence from %v: %w", remoteTarget, err)
	}

	// The list is in reverse order, so the first left-side entry
	// is the oldest commit unique to the feature branch.
	var firstUnique git.Hash
	for _, commit := range commits {
		if commit.Side == git.SideLeft {
			firstUnique = commit.Hash
			break
		}
	}
	if firstUnique == "" {
		h.Log.Info("No commits to merge: the target branch already has everything",
			"branch", featureBranch)
		return nil
	}

	head, err := h.Repository.Head(ctx)
	if err != nil {
		return fmt.Errorf("resolve HEAD: %w", err)
	}

	if firstUnique == head {
		// The branch has exactly one commit on top of the target.
		// Rebase it; there's nothing to squash.
		h.Log.Info("Rebasing commit onto the target branch")
		if err := h.Repository.Rebase(ctx, git.RebaseRequest{
			Upstream: remoteTarget,
		}); err != nil {
			return fmt.Errorf("rebase: %w", err)
		}
	} else {
		if err := h.squash(ctx, req, remoteTarget, firstUnique); err != nil {
			return err
		}
	}

	h.Log.Info("Force-pushing to the feature branch", "branch", featureBranch)
	if err := h.Repository.Push(ctx, git.PushOptions{
		Remote:  req.Remote,
		Refspec: git.Refspec("HEAD:" + featureBranch),
		Force:   true,
	}); err != nil {
		return fmt.Errorf("push %v: %w", featureBranch, err)
	}

	h.Log.Info("Pushing to the target branch", "branch", req.TargetBranch)
	if err := h.Repository.Push(ctx, git.PushOptions{
		Remote:  req.Remote,
		Refspec: git.Refspec("HEAD:" + req.TargetBranch),
	}); err != nil {
		return fmt.Errorf("push %v: %w", req.TargetBranch, err)
	}

	h.Log.Info("Switching to the target branch", "branch", req.TargetBranch)
	if err := h.Repository.Checkout(ctx, req.TargetBranch); err != nil {
		return fmt.Errorf("checkout %v: %w", req.TargetBranch, err)
	}

	h.Log.Info("Pulling upstream changes")
	if err := h.Repository.Pull(ctx, git.PullOptions{
		Remote:  req.Remote,
		Refspec: git.Refspec(req.TargetBranch),
		Rebase:  true,
	}); err != nil {
		return fmt.Errorf("pull %v: %w", req.TargetBranch, err)
	}

	return h.deleteFeatureBranch(ctx, req, featureBranch)
}

// squash brings upstream changes into the feature branch
// and replaces the branch's commits with a single commit.
func (h *Handler) squash(ctx context.Context, req *Request, remoteTarget string, firstUnique git.Hash) error {
	// Capture the message before history is rewritten.
	firstMessage, err := h.Repository.CommitMessage(ctx, firstUnique.String())
	if err != nil {
		return fmt.Errorf("get message of %v: %w", firstUnique, err)
	}

	h.Log.Info("Merging in upstream changes")
	if err := h.Repository.Merge(ctx, git.MergeRequest{
		Commit: remoteTarget,
		NoEdit: true,
	}); err != nil {
		return fmt.Errorf("merge %v: %w", remoteTarget, err)
	}

	h.Log.Info("Squashing commits")
	if err := h.Repository.Reset(ctx, remoteTarget, git.ResetOptions{
		Mode: git.ResetSoft,
	}); err != nil {
		return fmt.Errorf("reset to %v: %w", remoteTarget, err)
	}

	message := req.Message
	if message == "" {
		message, err = h.resolveMessage(req, firstMessage)
		if err != nil {
			return err
		}
	}

	if err := h.Repository.Commit(ctx, git.CommitRequest{Message: message}); err != nil {
		return fmt.Errorf("commit squashed changes: %w", err)
	}
	return nil
}

// resolveMessage determines the commit message for the squashed commit
// when none was supplied: the user may re-use the message of the first
// commit on the branch, or write a new one.
func (h *Handler) resolveMessage(req *Request, firstMessage string) (string, error) {
	fmt.Fprintf(h.View, "Message of the first commit on this branch:\n----\n%s\n----\n", firstMessage)

	reuse := req.AssumeYes
	if !reuse {
		if !ui.Interactive(h.View) {
			return "", fmt.Errorf("cannot select a commit message: %w "+
				"(use --message or --assume-yes)", ui.ErrPrompt)
		}

		prompt := ui.NewConfirm().
			WithTitle("Re-use this message").
			WithDescription("Answer no to write a new commit message.").
			WithValue(&reuse)
		if err := ui.Run(h.View, prompt); err != nil {
			return "", fmt.Errorf("prompt: %w", err)
		}
	}

	if reuse {
		h.Log.Info("Re-using the commit message")
		return firstMessage, nil
	}

	var message string
	field := ui.NewTextArea().
		WithTitle("Commit message").
		WithDescription("Press ctrl+d to accept the message.").
		WithValue(&message)
	if err := ui.Run(h.View, field); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	if strings.TrimSpace(message) == "" {
		return "", errors.New("empty commit message")
	}
	return message, nil
}

// deleteFeatureBranch deletes the merged branch locally and on the
// remote, after confirmation.
// In non-interactive mode without --assume-yes, the branch is kept.
func (h *Handler) deleteFeatureBranch(ctx context.Context, req *Request, featureBranch string) error {
	del := req.AssumeYes
	if !del && ui.Interactive(h.View) {
		prompt := ui.NewConfirm().
			WithTitle("Delete feature branch").
			WithDescription(fmt.Sprintf("Delete %v locally and on %v.", featureBranch, req.Remote)).
			WithValue(&del)
		if err := ui.Run(h.View, prompt); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
	}
	if !del {
		return nil
	}

	h.Log.Info("Deleting feature branch", "branch", featureBranch)
	if err := h.Repository.DeleteBranch(ctx, featureBranch, git.BranchDeleteOptions{}); err != nil {
		return fmt.Errorf("delete %v: %w", featureBranch, err)
	}

	h.Log.Info("Deleting feature branch on the remote", "remote", req.Remote)
	if err := h.Repository.Push(ctx, git.PushOptions{
		Remote:  req.Remote,
		Refspec: git.Refspec(featureBranch),
		Delete:  true,
	}); err != nil {
		return fmt.Errorf("delete %v on %v: %w", featureBranch, req.Remote, err)
	}
	return nil
}
