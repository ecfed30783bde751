// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/syntax"
)

// Runner invokes external processes for the build pipeline. Invocations
// are synchronous and sequential; a nonzero exit is fatal to the caller.
type Runner struct {
	// Logger receives one entry per invocation. Nil falls back to the
	// package default logger.
	Logger *log.Logger

	// Dir is the working directory for invocations; empty inherits the
	// parent's working directory.
	Dir string

	// windows switches command-line rendering to batch quoting rules.
	// Overridable in tests.
	windows bool
}

// NewRunner creates a Runner targeting the current platform.
func NewRunner(logger *log.Logger) *Runner {
	return &Runner{Logger: logger, windows: runtime.GOOS == "windows"}
}

// Run executes name with args, streaming output to the parent's stdio.
func (r *Runner) Run(name string, args ...string) error {
	return r.run(name, args, nil, nil)
}

// RunCapture executes name with args, capturing stdout and stderr. On a
// nonzero exit the captured output is included in the returned error.
func (r *Runner) RunCapture(name string, args ...string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	err = r.run(name, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), err
}

// CombinedOutput executes name with args and returns stdout and stderr
// interleaved into one string. A nonzero exit still yields the output;
// only infrastructure failures (e.g. the binary not being found) error.
func (r *Runner) CombinedOutput(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = r.Dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return string(out), nil
		}
		return "", fmt.Errorf("failed to execute %s: %w", name, err)
	}
	return string(out), nil
}

func (r *Runner) run(name string, args []string, outBuf, errBuf *bytes.Buffer) error {
	logger := r.logger()

	argv := append([]string{name}, args...)
	logger.Info("running command", "cmd", JoinForShell(argv))

	if r.windows {
		// cmd.exe gets the whole invocation as one line, so arguments that
		// would be split or reinterpreted by the batch parser need quoting.
		line, err := BatchCommandLine(argv)
		if err != nil {
			return err
		}
		logger.Debug("converted to batch command line", "cmd", line)
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = r.Dir
	if outBuf != nil {
		cmd.Stdout = outBuf
		cmd.Stderr = errBuf
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		wd := r.Dir
		if wd == "" {
			wd, _ = os.Getwd()
		}
		logger.Error("command failed", "dir", wd, "cmd", JoinForShell(argv))
		if outBuf != nil {
			return fmt.Errorf("command %s failed in %s: %w\nstdout output:\n%s\nstderr output:\n%s",
				name, wd, err, outBuf.String(), errBuf.String())
		}
		return fmt.Errorf("command %s failed in %s: %w", name, wd, err)
	}

	return nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

// JoinForShell renders argv as a single POSIX shell line, quoting each
// argument that needs it. Used for log output only.
func JoinForShell(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			// Control characters cannot be quoted portably; log them raw.
			q = arg
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}

// QuoteForBatch quotes a single argument for the cmd.exe batch parser.
// Only arguments containing ';' or '=' need quoting there; an argument
// that needs quoting but already contains a double quote cannot be
// represented and is an error.
func QuoteForBatch(arg string) (string, error) {
	if !strings.ContainsAny(arg, ";=") {
		return arg, nil
	}
	if strings.Contains(arg, `"`) {
		return "", fmt.Errorf("cannot batch-quote argument containing a double quote: %s", arg)
	}
	return `"` + arg + `"`, nil
}

// BatchCommandLine joins argv into a single cmd.exe command line.
func BatchCommandLine(argv []string) (string, error) {
	parts := make([]string, len(argv))
	for i, arg := range argv {
		q, err := QuoteForBatch(arg)
		if err != nil {
			return "", err
		}
		parts[i] = q
	}
	return strings.Join(parts, " "), nil
}
