package git

import (
	"context"
	"errors"
	"fmt"
)

// PullOptions configures the behavior of Pull.
type PullOptions struct {
	// Remote is the remote to pull from.
	Remote string

	// Refspec is the ref to pull.
	// Requires Remote to be set.
	Refspec Refspec

	// Rebase rebases the current branch on top of the upstream
	// branch instead of merging.
	Rebase bool
}

// Pull fetches objects and refs from a remote repository
// and incorporates them into the current branch,
// streaming Git's output to the user.
func (r *Repository) Pull(ctx context.Context, opts PullOptions) error {
	if opts.Refspec != "" && opts.Remote == "" {
		return errors.New("pull: refspec specified without remote")
	}

	args := []string{"pull"}
	if opts.Rebase {
		args = append(args, "--rebase")
	}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
	}
	if opts.Refspec != "" {
		args = append(args, opts.Refspec.String())
	}

	if _, err := r.gitCmd(ctx, args...).RunLines(); err != nil {
		return fmt.Errorf("pull: %w", err)
	}
	return nil
}
