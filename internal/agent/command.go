package agent

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/maxbolgarin/lang"
)

// commandTool runs one CLI tool as a child process. The input text is piped
// to the process on stdin, never through any ambient state.
type commandTool struct {
	name    string
	args    []string
	timeout time.Duration
}

func (t commandTool) Name() string {
	return t.name
}

func (t commandTool) Present() bool {
	_, err := exec.LookPath(t.name)
	return err == nil
}

func (t commandTool) Invoke(ctx context.Context, input string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, t.name, t.args...)
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &ServiceError{
			Tool:   t.name,
			Stderr: lang.TruncateString(strings.TrimSpace(stderr.String()), 2000),
			Err:    err,
		}
	}

	return stdout.String(), nil
}
