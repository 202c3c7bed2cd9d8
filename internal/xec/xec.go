// Package xec is a wrapper around os/exec
// that centralizes command execution.
//
// It provides support for forwarding command output to the logger
// and capturing stderr for error reporting.
//
// # Stderr handling
//
// [Cmd] treats stderr as follows:
//
//   - if the logger is at debug level or lower,
//     stderr for the command is written to the logger as it arrives
//     with the command name as a prefix (e.g. "git fetch: ...").
//   - otherwise, stderr is captured (in memory)
//     and surfaced in the error if the command fails.
//
// Use [Cmd.RunLines] to instead merge stderr into stdout
// and stream the combined output to the user while capturing it.
package xec

import "os/exec"

//go:generate mockgen -destination=xectest/mock_execer.go -package=xectest -write_package_comment=false -typed . Execer

// Execer controls actual execution of commands.
// It provides a way to intercept command execution for testing.
type Execer interface {
	Output(*exec.Cmd) ([]byte, error)
	Run(*exec.Cmd) error
}

type realExecer struct{}

// DefaultExecer is the default implementation of Execer.
// It uses the real os/exec package to execute commands.
var DefaultExecer Execer = realExecer{}

func (realExecer) Run(cmd *exec.Cmd) error              { return cmd.Run() }
func (realExecer) Output(cmd *exec.Cmd) ([]byte, error) { return cmd.Output() }
