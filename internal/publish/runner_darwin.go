//go:build darwin

package publish

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type osascriptRunner struct{}

func defaultRunner() ScriptRunner {
	return osascriptRunner{}
}

func (osascriptRunner) Run(ctx context.Context, lines []string, args ...string) (string, error) {
	cmdArgs := make([]string, 0, len(lines)*2+len(args))
	for _, line := range lines {
		cmdArgs = append(cmdArgs, "-e", line)
	}
	cmdArgs = append(cmdArgs, args...)

	cmd := exec.CommandContext(ctx, "osascript", cmdArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("osascript: %s", msg)
		}
		return "", fmt.Errorf("osascript: %w", err)
	}
	return stdout.String(), nil
}
