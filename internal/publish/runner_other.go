//go:build !darwin

package publish

import (
	"context"
	"fmt"
	"runtime"
)

// unsupportedRunner stands in for osascript where Calendar.app does not exist.
type unsupportedRunner struct{}

func defaultRunner() ScriptRunner {
	return unsupportedRunner{}
}

func (unsupportedRunner) Run(context.Context, []string, ...string) (string, error) {
	return "", fmt.Errorf("calendar-app backend is only available on darwin, not %s", runtime.GOOS)
}
