// Package genxaiprotos implements the gen-xai-protos command logic.
package genxaiprotos

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zchee/xai-sdk-go/toolchain"
)

// Main is the entrypoint for the program.
func Main() {
	os.Exit(Run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// Run runs the program and returns the exit code.
func Run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	if err := run(args, stdin, stdout, stderr); err != nil {
		message := err.Error()
		if message == "" {
			message = "unexpected error"
		}
		_, _ = fmt.Fprintln(stderr, message)
		return 1
	}
	return 0
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	if len(args) > 1 {
		return fmt.Errorf("%s takes no arguments; set %s, %s, or %s to adjust a run",
			filepath.Base(args[0]), refEnv, tmpEnv, toolchainEnv)
	}

	p, err := computePaths()
	if err != nil {
		return err
	}
	return runAt(p, stdin, stdout, stderr)
}

// runAt drives the pipeline against an explicit set of paths.
func runAt(p paths, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	ref := getenvDefault(refEnv, defaultRef)

	var conf *toolchain.Config
	if path := os.Getenv(toolchainEnv); path != "" {
		loaded, err := toolchain.LoadConfig(path)
		if err != nil {
			return err
		}
		conf = loaded
	}
	var extraDirs []string
	if info, err := os.Stat(p.toolDir); err == nil && info.IsDir() {
		extraDirs = append(extraDirs, p.toolDir)
	}
	tools, err := toolchain.Resolve(requiredTools, conf, extraDirs...)
	if err != nil {
		return err
	}

	// The scratch workspace is owned exclusively by this run.
	if err := os.RemoveAll(p.tmp); err != nil {
		return err
	}
	if err := os.MkdirAll(p.tmp, os.ModePerm); err != nil {
		return err
	}

	ctx := context.Background()
	if err := clonePythonSDK(ctx, tools, p, ref, stdin, stdout, stderr); err != nil {
		return err
	}
	fdSet, err := buildDescriptorSet(p, stdout)
	if err != nil {
		return err
	}
	if err := protocGenerate(ctx, tools, p, stdout); err != nil {
		return err
	}
	if err := verifyOutputs(p.root, fdSet); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stdout, "Regenerated collections/shared/types protos from xai-sdk-python @ %s\n", ref)
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
