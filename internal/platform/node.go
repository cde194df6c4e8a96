package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrNodeNotFound is returned when no node binary is on PATH.
var ErrNodeNotFound = errors.New("node not found on PATH")

// nodeTimeout bounds `node --version` so a broken install cannot hang a run.
const nodeTimeout = 5 * time.Second

// NodeVersion returns the output of `node --version` (e.g. "v20.11.1").
func NodeVersion(ctx context.Context) (string, error) {
	nodeBin, err := exec.LookPath("node")
	if err != nil {
		return "", ErrNodeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, nodeTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, nodeBin, "--version")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("running node --version: %w: %s", err, msg)
		}
		return "", fmt.Errorf("running node --version: %w", err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
