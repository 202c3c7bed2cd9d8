package git

import (
	"context"
	"fmt"
	"strconv"
)

// ResetMode specifies the reset mode used in the form:
//
//	git reset --<mode> <commit>
//
// The default mode is ResetMixed.
type ResetMode int

const (
	// ResetMixed resets the index to the specified commit
	// but leaves the working tree unchanged.
	ResetMixed ResetMode = iota

	// ResetSoft resets HEAD to the specified commit,
	// leaving the index and working tree unchanged.
	ResetSoft

	// ResetHard resets the index and working tree to the specified commit.
	ResetHard
)

func (m ResetMode) String() string {
	switch m {
	case ResetMixed:
		return "mixed"
	case ResetSoft:
		return "soft"
	case ResetHard:
		return "hard"
	default:
		return strconv.Itoa(int(m))
	}
}

// ResetOptions configures the behavior of Reset.
type ResetOptions struct {
	Mode ResetMode
}

// Reset resets HEAD, and depending on the mode,
// the index and working tree, to the specified commit.
func (r *Repository) Reset(ctx context.Context, commit string, opts ResetOptions) error {
	r.log.Debug("Resetting repository", "commit", commit, "mode", opts.Mode)

	err := r.gitCmd(ctx, "reset", "--"+opts.Mode.String(), commit).Run()
	if err != nil {
		return fmt.Errorf("git reset: %w", err)
	}
	return nil
}
