// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const e2eEnvVar = "RUN_CLI_E2E"

var (
	// the suite runs from tests/e2e
	RepoRoot  = filepath.Join("..", "..")
	CLIBinary = filepath.Join(RepoRoot, "bin", "its")
)

func IsE2E() bool {
	return os.Getenv(e2eEnvVar) != ""
}

// Env holds the environment a CLI invocation runs with, on top of an
// isolated HOME
type Env map[string]string

// RunCLI executes the CLI binary with home as HOME, so nothing outside of
// it is read or written. The exit code is returned along with the combined
// output.
func RunCLI(home string, env Env, args ...string) (string, int, error) {
	/* #nosec G204 */
	cmd := exec.Command(CLIBinary, args...)
	cmd.Dir = home
	cmd.Env = []string{
		"HOME=" + home,
		"PATH=" + os.Getenv("PATH"),
	}
	for k, v := range env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode(), nil
	}
	if err != nil {
		return string(out), -1, err
	}
	return string(out), 0, nil
}
