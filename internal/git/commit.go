package git

import (
	"context"
	"fmt"
	"strings"
)

// CommitRequest is a request to commit staged changes.
// It relies on the 'git commit' command.
type CommitRequest struct {
	// Message is the commit message.
	Message string // required
}

// Commit commits staged changes with the given message,
// streaming Git's output to the user.
func (r *Repository) Commit(ctx context.Context, req CommitRequest) error {
	if req.Message == "" {
		return fmt.Errorf("empty commit message")
	}

	_, err := r.gitCmd(ctx, "commit", "-m", req.Message).RunLines()
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// CommitMessage reports the full commit message (subject and body)
// of the given commit-ish.
func (r *Repository) CommitMessage(ctx context.Context, commitish string) (string, error) {
	out, err := r.gitCmd(ctx,
		"show", "--no-patch", "--format=%B", commitish,
	).OutputChomp()
	if err != nil {
		return "", fmt.Errorf("git show: %w", err)
	}

	// %B carries the message's trailing newlines.
	return strings.TrimRight(out, "\n"), nil
}
