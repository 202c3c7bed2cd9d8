package git

import (
	"context"
	"fmt"
)

// FetchOptions configures the behavior of Fetch.
type FetchOptions struct {
	// Remote is the remote to fetch from.
	// If empty, the default remote for the current branch is used.
	Remote string

	// Refspecs are the refs to fetch.
	// If empty, the remote's default refspecs are used.
	Refspecs []Refspec
}

// Fetch fetches objects and refs from a remote repository,
// streaming Git's output to the user.
func (r *Repository) Fetch(ctx context.Context, opts FetchOptions) error {
	args := []string{"fetch"}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
	}
	for _, refspec := range opts.Refspecs {
		args = append(args, refspec.String())
	}

	if _, err := r.gitCmd(ctx, args...).RunLines(); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	return nil
}
