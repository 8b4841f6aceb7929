package genxaiprotos

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/zchee/xai-sdk-go/pydesc"
	"github.com/zchee/xai-sdk-go/toolchain"
)

// clonePythonSDK makes a shallow clone of xai-sdk-python at ref into the
// scratch workspace, streaming git's progress through to the caller.
func clonePythonSDK(ctx context.Context, tools *toolchain.Toolchain, p paths, ref string, stdin io.Reader, stdout, stderr io.Writer) error {
	args := []string{"clone", "--depth", "1", "--branch", ref, upstreamURL, p.clone}
	if err := toolchain.Run(ctx, tools.Path("git"), args, stdin, stdout, stderr); err != nil {
		return errors.Wrap(err, "git clone failed")
	}
	return nil
}

// buildDescriptorSet recovers the descriptors embedded in the clone's
// generated modules, assembles the dependency-closed set seeded by
// rootModules, and writes it where protoc will read it.
func buildDescriptorSet(p paths, stdout io.Writer) (*descriptorpb.FileDescriptorSet, error) {
	// The SDK is a src-layout Python project: its packages live below
	// <clone>/src.
	index, err := pydesc.Scan(filepath.Join(p.clone, "src"))
	if err != nil {
		return nil, err
	}

	set := pydesc.NewSet(index)
	for _, module := range rootModules {
		fd, err := index.Module(module)
		if err != nil {
			return nil, err
		}
		if err := set.Add(fd); err != nil {
			return nil, err
		}
	}

	for _, pf := range protoFiles {
		if !set.Contains(pf) {
			return nil, fmt.Errorf("descriptor set does not cover %s", pf)
		}
	}
	if err := set.Link(); err != nil {
		return nil, err
	}

	n, err := set.Save(p.desc)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(stdout, "assembled %d file descriptors (%s) into %s\n",
		set.Len(), humanize.Bytes(uint64(n)), p.desc)
	return set.FileDescriptorSet(), nil
}

// protocGenerate drives protoc over the descriptor set with every plugin
// pinned to its resolved executable.
func protocGenerate(ctx context.Context, tools *toolchain.Toolchain, p paths, stdout io.Writer) error {
	output, err := toolchain.RunCombined(ctx, tools.Path("protoc"), protocArgs(tools, p))
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("protoc failed to produce output: %v\n%s", err, output)
		}
		return err
	}
	if len(output) > 0 {
		_, _ = stdout.Write(output)
	}
	return nil
}
