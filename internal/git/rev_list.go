package git

import (
	"context"
	"fmt"
	"strings"
)

// Side reports which side of a symmetric difference a commit is on.
type Side int

const (
	// SideLeft marks a commit reachable only from the left operand.
	SideLeft Side = iota

	// SideRight marks a commit reachable only from the right operand.
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// LeftRightCommit is a commit in a symmetric difference,
// tagged with the side it is reachable from.
type LeftRightCommit struct {
	Hash Hash
	Side Side
}

// ListLeftRight lists commits reachable from exactly one of left and right
// (the symmetric difference "left...right"),
// in chronologically ascending order.
func (r *Repository) ListLeftRight(ctx context.Context, left, right string) ([]LeftRightCommit, error) {
	out, err := r.gitCmd(ctx,
		"rev-list", "--left-right", "--reverse", left+"..."+right,
	).OutputChomp()
	if err != nil {
		return nil, fmt.Errorf("rev-list: %w", err)
	}

	var commits []LeftRightCommit
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			continue
		}

		// Each line is a '<' or '>' marker followed by the hash.
		marker, hash := line[0], line[1:]
		var side Side
		switch marker {
		case '<':
			side = SideLeft
		case '>':
			side = SideRight
		default:
			return nil, fmt.Errorf("bad rev-list output: %q", line)
		}

		commits = append(commits, LeftRightCommit{
			Hash: Hash(hash),
			Side: side,
		})
	}

	return commits, nil
}
