package git

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/git-mergepr/internal/silogtest"
	"go.abhg.dev/git-mergepr/internal/xec"
	"go.abhg.dev/git-mergepr/internal/xec/xectest"
	"go.abhg.dev/log/silog"
	"go.uber.org/mock/gomock"
)

// newMockRepository builds a Repository
// whose commands are intercepted by the returned mock.
func newMockRepository(t *testing.T) (*Repository, *xectest.MockExecer) {
	mockExecer := xectest.NewMockExecer(gomock.NewController(t))
	repo := &Repository{
		root: t.TempDir(),
		log:  silogtest.New(t),
		exec: mockExecer,
	}
	return repo, mockExecer
}

func TestRepositoryPushArgs(t *testing.T) {
	tests := []struct {
		name string
		opts PushOptions
		want []string
	}{
		{
			name: "RemoteOnly",
			opts: PushOptions{Remote: "origin"},
			want: []string{"git", "push", "origin"},
		},
		{
			name: "Refspec",
			opts: PushOptions{Remote: "origin", Refspec: "HEAD:feature"},
			want: []string{"git", "push", "origin", "HEAD:feature"},
		},
		{
			name: "Force",
			opts: PushOptions{Remote: "origin", Refspec: "HEAD:feature", Force: true},
			want: []string{"git", "push", "--force", "origin", "HEAD:feature"},
		},
		{
			name: "Delete",
			opts: PushOptions{Remote: "origin", Refspec: "feature", Delete: true},
			want: []string{"git", "push", "--delete", "origin", "feature"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockExecer := newMockRepository(t)

			var got []string
			mockExecer.EXPECT().
				Run(gomock.Any()).
				DoAndReturn(func(cmd *exec.Cmd) error {
					got = cmd.Args
					return nil
				})

			require.NoError(t, repo.Push(t.Context(), tt.opts))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepositoryPushNoDestination(t *testing.T) {
	repo, _ := newMockRepository(t)

	err := repo.Push(t.Context(), PushOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "no remote or refspec")
}

func TestRepositoryFetchArgs(t *testing.T) {
	repo, mockExecer := newMockRepository(t)

	var got []string
	mockExecer.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(cmd *exec.Cmd) error {
			got = cmd.Args
			return nil
		})

	require.NoError(t, repo.Fetch(t.Context(), FetchOptions{
		Remote:   "origin",
		Refspecs: []Refspec{"main", "feature"},
	}))
	assert.Equal(t, []string{"git", "fetch", "origin", "main", "feature"}, got)
}

func TestListLeftRightBadOutput(t *testing.T) {
	repo, mockExecer := newMockRepository(t)

	mockExecer.EXPECT().
		Output(gomock.Any()).
		Return([]byte("?not-a-marker\n"), nil)

	_, err := repo.ListLeftRight(t.Context(), "HEAD", "origin/main")
	require.Error(t, err)
	assert.ErrorContains(t, err, "bad rev-list output")
}

func TestGitCmdLogPrefix(t *testing.T) {
	var logBuffer bytes.Buffer
	log := silog.New(&logBuffer, &silog.Options{
		Level: silog.LevelDebug,
	})

	t.Run("DefaultPrefixNoCommand", func(t *testing.T) {
		defer logBuffer.Reset()

		_ = newGitCmd(t.Context(), log, xec.DefaultExecer, "--unknown-flag").
			WithDir(t.TempDir()).
			Run()

		assert.Contains(t, logBuffer.String(), "git: ")
	})

	t.Run("DefaultPrefixCommand", func(t *testing.T) {
		defer logBuffer.Reset()

		_ = newGitCmd(t.Context(), log, xec.DefaultExecer, "unknown-cmd").
			WithDir(t.TempDir()).
			Run()

		assert.Contains(t, logBuffer.String(), "git unknown-cmd: ")
	})
}
