package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// executeSetup runs setup commands in order, stopping at the first failure
func (r *Runner) executeSetup(ctx context.Context, commands []string, baseDir string) error {
	for _, command := range commands {
		if err := r.executeHook(ctx, command, baseDir); err != nil {
			return fmt.Errorf("setup failed: %w", err)
		}
	}
	return nil
}

// executeTeardown runs every teardown command and returns the first error
func (r *Runner) executeTeardown(ctx context.Context, commands []string, baseDir string) error {
	var firstErr error
	for _, command := range commands {
		if err := r.executeHook(ctx, command, baseDir); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("teardown failed: %w", err)
			}
			// Continue executing other teardown commands even if one fails
		}
	}
	return firstErr
}

// executeHook executes a single hook command
func (r *Runner) executeHook(ctx context.Context, command, baseDir string) error {
	cmdStr := strings.TrimSpace(command)
	if cmdStr == "" {
		return nil
	}

	dir, err := filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("resolving hook directory %q: %w", baseDir, err)
	}

	// Scripts next to the scenario can be named without a path
	parts := strings.Fields(cmdStr)
	if len(parts) > 0 {
		executable := parts[0]
		if strings.HasPrefix(executable, "./") || strings.HasPrefix(executable, "../") {
			parts[0] = filepath.Join(dir, executable)
			cmdStr = strings.Join(parts, " ")
		} else if !filepath.IsAbs(executable) && !isInPath(executable) {
			potentialPath := filepath.Join(dir, executable)
			if _, err := os.Stat(potentialPath); err == nil {
				parts[0] = potentialPath
				cmdStr = strings.Join(parts, " ")
			}
		}
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", cmdStr)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	r.logger.Debug("running hook", "command", cmdStr, "dir", dir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("command %q failed: %v\nOutput: %s", command, err, string(output))
	}

	if len(output) > 0 {
		r.logger.Debug("hook output", "command", command, "output", strings.TrimSpace(string(output)))
	}

	return nil
}

// isInPath checks if a command is available in the system PATH
func isInPath(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
