package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/alecthomas/kong"
)

// _version is the version of git-mergepr, set at build time.
var _version = "dev"

var _debugReadBuildInfo = debug.ReadBuildInfo

// _generateBuildReport reports VCS information embedded
// into the binary at build time, if any.
var _generateBuildReport = func() string {
	info, ok := _debugReadBuildInfo()
	if !ok {
		return ""
	}

	var (
		revision, timestamp string
		dirty               bool
	)
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		case "vcs.time":
			timestamp = setting.Value
		}
	}

	var parts []string
	if revision != "" {
		if dirty {
			revision += "-dirty"
		}
		parts = append(parts, revision)
	}
	if timestamp != "" {
		parts = append(parts, timestamp)
	}
	return strings.Join(parts, " ")
}

type versionFlag bool

func (versionFlag) BeforeReset(app *kong.Kong) error {
	if report := _generateBuildReport(); report != "" {
		fmt.Fprintf(app.Stdout, "git-mergepr %v (%v)\n", _version, report)
	} else {
		fmt.Fprintln(app.Stdout, "git-mergepr", _version)
	}
	app.Exit(0)
	return nil
}
