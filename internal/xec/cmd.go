package xec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.abhg.dev/log/silog"
)

// Cmd is an external command being prepared or run.
type Cmd struct {
	cmd    *exec.Cmd
	log    *silog.Logger
	prefix string
	execer Execer

	// Wraps an error with captured stderr output.
	wrap func(error) error
}

// Command constructs a Cmd to execute a program with the given arguments.
//
// ctx controls the lifetime of the command,
// and log is used to report command output.
// If log is nil, a no-op logger is used.
func Command(ctx context.Context, log *silog.Logger, name string, args ...string) *Cmd {
	if log == nil {
		log = silog.Nop()
	}

	c := &Cmd{
		cmd:    exec.CommandContext(ctx, name, args...),
		log:    log,
		prefix: name,
		execer: DefaultExecer,
	}
	c.cmd.Env = os.Environ()
	c.cmd.Stderr, c.wrap = c.stderrWriter()
	return c
}

// Returns a writer for the command's stderr,
// and a function that wraps an error with the output recorded so far.
//
// If the logger has debug logging enabled,
// stderr is streamed to it as it arrives.
// Otherwise it is buffered in memory
// and attached to the error if the command fails.
func (c *Cmd) stderrWriter() (io.Writer, func(error) error) {
	if c.log.Level() <= silog.LevelDebug {
		w, flush := lineWriter(func(line string) {
			c.log.Debugf("%s: %s", c.prefix, line)
		})
		return w, func(err error) error {
			flush()
			return err
		}
	}

	var buf bytes.Buffer
	return &buf, func(err error) error {
		stderr := bytes.TrimSpace(buf.Bytes())
		if err == nil || len(stderr) == 0 {
			return err
		}
		return errors.Join(err, fmt.Errorf("stderr:\n%s", stderr))
	}
}

// WithExecer sets the Execer used to run the command.
func (c *Cmd) WithExecer(execer Execer) *Cmd {
	c.execer = execer
	return c
}

// WithLogPrefix changes the prefix used for log messages from this command.
func (c *Cmd) WithLogPrefix(prefix string) *Cmd {
	c.prefix = prefix
	return c
}

// WithDir sets the working directory for the command.
func (c *Cmd) WithDir(dir string) *Cmd {
	c.cmd.Dir = dir
	return c
}

// WithStdin supplies the command's stdin from the given reader.
func (c *Cmd) WithStdin(r io.Reader) *Cmd {
	c.cmd.Stdin = r
	return c
}

// WithStdinString supplies the command's stdin from the given string.
func (c *Cmd) WithStdinString(s string) *Cmd {
	return c.WithStdin(strings.NewReader(s))
}

// WithStdout redirects the command's stdout to the given writer.
func (c *Cmd) WithStdout(w io.Writer) *Cmd {
	c.cmd.Stdout = w
	return c
}

// WithStderr sets the writer for the command's stderr,
// clearing the default capture-into-error behavior.
func (c *Cmd) WithStderr(w io.Writer) *Cmd {
	c.cmd.Stderr = w
	c.wrap = func(err error) error { return err }
	return c
}

// AppendEnv appends environment variables to the command.
func (c *Cmd) AppendEnv(env ...string) *Cmd {
	c.cmd.Env = append(c.cmd.Env, env...)
	return c
}

// Args returns the arguments passed to the command,
// not including the command name itself.
func (c *Cmd) Args() []string {
	return c.cmd.Args[1:]
}

// Run runs the command, blocking until it completes.
// It returns an error if the command fails with a non-zero exit code.
func (c *Cmd) Run() error {
	return c.wrap(c.execer.Run(c.cmd))
}

// Output runs the command and returns its stdout.
// It returns an error if the command fails with a non-zero exit code.
//
// If the logger has debug logging enabled,
// the output is also written to the logger.
func (c *Cmd) Output() ([]byte, error) {
	out, err := c.execer.Output(c.cmd)
	if err == nil && c.log.Level() <= silog.LevelDebug {
		for line := range strings.Lines(string(out)) {
			c.log.Debugf("%s: %s", c.prefix, strings.TrimRight(line, " \t\r\n"))
		}
	}
	return out, c.wrap(err)
}

// OutputChomp runs the command and returns its stdout,
// with the trailing newline removed.
// It returns an error if the command fails with a non-zero exit code.
func (c *Cmd) OutputChomp() (string, error) {
	out, err := c.Output()
	out, _ = bytes.CutSuffix(out, []byte{'\n'})
	return string(out), err
}

// RunLines runs the command with stderr merged into stdout.
// Each line of the combined output is reported to the logger
// as it arrives, prefixed with the command name,
// and returned to the caller with trailing whitespace removed.
//
// It returns the captured lines and an error
// if the command fails with a non-zero exit code.
func (c *Cmd) RunLines() ([]string, error) {
	var lines []string
	w, flush := lineWriter(func(line string) {
		c.log.Infof("%s> %s", c.prefix, line)
		lines = append(lines, line)
	})

	c.cmd.Stdout = w
	c.cmd.Stderr = w
	err := c.execer.Run(c.cmd)
	flush()
	return lines, err
}

// ExitCode reports the exit code in err, if any.
// It returns -1 and false if err does not carry an exit code.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return -1, false
}
