package git

import (
	"context"
	"fmt"
)

// MergeRequest is a request to merge a commit into the current branch.
type MergeRequest struct {
	// Commit is the commit-ish to merge into HEAD.
	Commit string // required

	// NoEdit accepts the auto-generated merge commit message
	// without opening an editor.
	NoEdit bool
}

// Merge merges the given commit into the current branch,
// streaming Git's output to the user.
func (r *Repository) Merge(ctx context.Context, req MergeRequest) error {
	args := []string{"merge"}
	if req.NoEdit {
		args = append(args, "--no-edit")
	}
	args = append(args, req.Commit)

	if _, err := r.gitCmd(ctx, args...).RunLines(); err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	return nil
}
