package git

import (
	"context"
	"errors"
	"fmt"
)

// PushOptions configures the behavior of Push.
type PushOptions struct {
	// Remote is the remote to push to.
	Remote string

	// Refspec is the refspec to push.
	// If empty, the current branch is pushed to the remote.
	Refspec Refspec

	// Force overwrites the remote ref
	// even if the update is not a fast-forward.
	Force bool

	// Delete removes the refs named by Refspec from the remote
	// instead of pushing them.
	Delete bool
}

// Push pushes objects and refs to a remote repository,
// streaming Git's output to the user.
func (r *Repository) Push(ctx context.Context, opts PushOptions) error {
	if opts.Remote == "" && opts.Refspec == "" {
		return errors.New("push: no remote or refspec specified")
	}

	args := []string{"push"}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.Delete {
		args = append(args, "--delete")
	}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
	}
	if opts.Refspec != "" {
		args = append(args, opts.Refspec.String())
	}

	if _, err := r.gitCmd(ctx, args...).RunLines(); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}
