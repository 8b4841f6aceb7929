package toolchain

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// Run executes the tool at path with args, wiring the given streams
// through unchanged.
func Run(ctx context.Context, path string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// RunCombined executes the tool at path with args and captures stdout and
// stderr interleaved in one buffer. The buffer is returned even when the
// run fails, so callers can report what the tool printed.
func RunCombined(ctx context.Context, path string, args []string) ([]byte, error) {
	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	err := cmd.Run()
	return output.Bytes(), err
}
