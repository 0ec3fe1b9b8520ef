package eval

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/goliatone/go-snippet/pkg/model"
)

// NewArgvRunner returns a CommandRunner that splits the command string
// with shell word rules and executes the argv directly, with no shell in
// between. Snippets filled from untrusted sources lose shell expansion
// but also lose pipelines, redirects and command chaining.
func NewArgvRunner() model.CommandRunner {
	return func(command string) (string, error) {
		argv, err := shellquote.Split(command)
		if err != nil {
			return "", fmt.Errorf("eval: split command %q: %w", command, err)
		}
		if len(argv) == 0 {
			return "", errors.New("eval: empty command")
		}

		cmd := exec.Command(argv[0], argv[1:]...)

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			cmdErr := &model.CommandError{
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
}
