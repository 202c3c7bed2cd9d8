package git

// Refspec specifies which refs to fetch or push,
// e.g. "HEAD:refs/heads/main" or "main".
//
// See git-push(1) for the full syntax.
type Refspec string

func (r Refspec) String() string {
	return string(r)
}
