package git

import (
	"context"
	"errors"
	"fmt"
)

// ErrDetachedHead indicates that the repository is
// in detached HEAD state.
var ErrDetachedHead = errors.New("in detached HEAD state")

// CurrentBranch reports the name of the branch that is checked out.
// It returns [ErrDetachedHead] if HEAD is not on a branch.
func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	name, err := r.gitCmd(ctx,
		"rev-parse", "--abbrev-ref", "--verify", "HEAD",
	).OutputChomp()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	if name == "HEAD" {
		return "", ErrDetachedHead
	}
	return name, nil
}

// Checkout switches to the given branch,
// streaming Git's output to the user.
func (r *Repository) Checkout(ctx context.Context, branch string) error {
	if _, err := r.gitCmd(ctx, "checkout", branch).RunLines(); err != nil {
		return fmt.Errorf("git checkout: %w", err)
	}
	return nil
}

// BranchDeleteOptions configures the behavior of DeleteBranch.
type BranchDeleteOptions struct {
	// Force deletes the branch even if it has unmerged changes.
	Force bool
}

// DeleteBranch deletes a local branch.
func (r *Repository) DeleteBranch(ctx context.Context, branch string, opts BranchDeleteOptions) error {
	args := []string{"branch"}
	if opts.Force {
		args = append(args, "-D")
	} else {
		args = append(args, "-d")
	}
	args = append(args, branch)

	if _, err := r.gitCmd(ctx, args...).RunLines(); err != nil {
		return fmt.Errorf("git branch: %w", err)
	}
	return nil
}
