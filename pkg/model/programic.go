package model

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Resolver supplies a variable value for a name, letting an embedding
// client answer variable lookups itself (editor state, session data)
// instead of the process environment. It is owned by the Variable that
// carries it and is invoked synchronously on every Evaluate call.
type Resolver func(name string) string

// Variable is a snippet fragment filled in from a named program variable,
// by default an environment variable.
type Variable struct {
	// Name of the variable to resolve.
	Name string

	// Value is the cached result of the most recent Evaluate call. It is
	// never refreshed implicitly.
	Value string

	// Resolver, when set, answers lookups instead of the environment.
	Resolver Resolver
}

func (v *Variable) String() string { return v.Value }

func (v *Variable) Type() Kind { return KindVariable }

func (v *Variable) NestedSegments() ([]Segment, bool) { return nil, false }

// Identifier returns the variable name.
func (v *Variable) Identifier() string { return v.Name }

// Evaluate refreshes the cached value. A resolver, when attached, wins
// unconditionally and its latest return overwrites any prior value.
// Without one the named environment variable is read; an unset variable
// yields the empty string, never an error.
func (v *Variable) Evaluate() error {
	if v.Resolver != nil {
		v.Value = v.Resolver(v.Name)
		return nil
	}
	v.Value = os.Getenv(v.Name)
	return nil
}

// CommandRunner executes a command string and returns its captured
// standard output. Injecting one lets callers bound execution time or
// stub out subprocesses entirely; the model itself imposes no timeout.
type CommandRunner func(command string) (string, error)

// Code is a snippet fragment filled in by running shell code and
// expanding its output, as TextMate's interpolated shell code does.
type Code struct {
	// Command is the shell code to run.
	Command string

	// Output is the captured stdout of the most recent successful
	// Evaluate call. A failed run leaves it untouched.
	Output string

	// Runner, when set, replaces the default `sh -c` execution.
	Runner CommandRunner
}

func (c *Code) String() string { return c.Output }

func (c *Code) Type() Kind { return KindCode }

func (c *Code) NestedSegments() ([]Segment, bool) { return nil, false }

// Identifier returns the command text. See Programic.Identifier for the
// collision caveat when two nodes share a command.
func (c *Code) Identifier() string { return c.Command }

// Evaluate runs the command in a fresh subprocess and stores its stdout.
// Failure is a recoverable, per-call error: the returned error wraps a
// *CommandError carrying the exit code and captured stderr, and the
// previously cached output is preserved.
func (c *Code) Evaluate() error {
	runner := c.Runner
	if runner == nil {
		runner = RunShell
	}
	out, err := runner(c.Command)
	if err != nil {
		return fmt.Errorf("model: evaluate code: %w", err)
	}
	c.Output = out
	return nil
}

// CommandError describes a failed snippet command execution.
type CommandError struct {
	Command  string
	ExitCode int // -1 when the process never ran or was signalled
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command %q failed (exit %d): %s", e.Command, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("command %q failed (exit %d): %v", e.Command, e.ExitCode, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// RunShell is the default CommandRunner: it hands the command string to
// `sh -c` and blocks until the subprocess exits, returning captured
// stdout. Failures come back as a *CommandError.
func RunShell(command string) (string, error) {
	cmd := exec.Command("sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{
			Command:  command,
			ExitCode: -1,
			Stderr:   stderr.String(),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}
		return "", cmdErr
	}
	return stdout.String(), nil
}
