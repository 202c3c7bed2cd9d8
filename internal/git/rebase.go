package git

import (
	"context"
	"fmt"
)

// RebaseRequest is a request to rebase the current branch.
type RebaseRequest struct {
	// Upstream is the commit-ish to rebase onto.
	Upstream string // required
}

// Rebase reapplies the current branch's commits
// on top of the given upstream,
// streaming Git's output to the user.
func (r *Repository) Rebase(ctx context.Context, req RebaseRequest) error {
	if _, err := r.gitCmd(ctx, "rebase", req.Upstream).RunLines(); err != nil {
		return fmt.Errorf("rebase: %w", err)
	}
	return nil
}
