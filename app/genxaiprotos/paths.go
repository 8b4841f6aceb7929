package genxaiprotos

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// paths are the locations a run reads and writes.
type paths struct {
	// root is the module root; generated bindings land below it.
	root string
	// tmp is the scratch workspace, recreated on every run.
	tmp string
	// clone receives the shallow clone of xai-sdk-python.
	clone string
	// desc is where the assembled descriptor set is written.
	desc string
	// toolDir is the module's tools/bin directory, searched for
	// executables when present.
	toolDir string
}

// computePaths locates the module root relative to this source file and
// lays out the scratch workspace below the base temp directory.
func computePaths() (paths, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return paths{}, errors.New("unable to compute module root")
	}
	root := filepath.Dir(filepath.Dir(filepath.Dir(file)))

	base := os.Getenv(tmpEnv)
	if base == "" {
		base = os.TempDir()
	}
	tmp := filepath.Join(base, "xai-sdk-python-proto")

	return paths{
		root:    root,
		tmp:     tmp,
		clone:   filepath.Join(tmp, "src"),
		desc:    filepath.Join(tmp, "xai-sdk-python.desc"),
		toolDir: filepath.Join(root, "tools", "bin"),
	}, nil
}
