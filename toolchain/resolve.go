package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Toolchain maps tool names to the executables a run will invoke.
type Toolchain struct {
	paths map[string]string
}

// Path returns the resolved location of name. It panics if name was not
// part of the Resolve call that produced t.
func (t *Toolchain) Path(name string) string {
	path, ok := t.paths[name]
	if !ok {
		panic(fmt.Sprintf("tool %s was not resolved", name))
	}
	return path
}

// Resolve locates every named tool up front, so a run fails before it has
// side effects rather than halfway through. Lookup tries, in order: the
// tool's configured location, the config's plugin_path directories, then
// extraDirs, then the PATH. Directory searches accept a protoc plugin
// under its bare name or with the protoc-gen- prefix.
func Resolve(names []string, conf *Config, extraDirs ...string) (*Toolchain, error) {
	if conf == nil {
		conf = &Config{}
	}
	tc := &Toolchain{paths: make(map[string]string, len(names))}
	for _, name := range names {
		path, err := resolveTool(name, conf, extraDirs)
		if err != nil {
			return nil, err
		}
		tc.paths[name] = path
	}
	return tc, nil
}

func resolveTool(name string, conf *Config, extraDirs []string) (string, error) {
	if t := conf.Tools[name]; t != nil && t.Location != "" {
		info, err := os.Stat(t.Location)
		if os.IsNotExist(err) {
			return "", errors.Errorf("%s: configured location does not exist: %s", name, t.Location)
		}
		if err != nil {
			return "", errors.Wrapf(err, "%s: failed to stat location", name)
		}
		if info.IsDir() {
			return findInDirs(name, []string{t.Location})
		}
		return t.Location, nil
	}
	if path, err := findInDirs(name, append(conf.PluginPath, extraDirs...)); err == nil {
		return path, nil
	}
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}
	return "", errors.Errorf("missing dependency: %s", name)
}

func findInDirs(name string, dirs []string) (string, error) {
	candidates := []string{name}
	if !strings.HasPrefix(name, "protoc-gen-") {
		candidates = append(candidates, "protoc-gen-"+name)
	}
	var lastErr error
	for _, dir := range dirs {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			info, err := os.Stat(path)
			if err == nil && !info.IsDir() {
				return path, nil
			}
			if err != nil && !os.IsNotExist(err) {
				lastErr = err
			}
		}
	}
	if lastErr != nil {
		return "", lastErr
	}
	return "", errors.Errorf("%s not found in %v", name, dirs)
}
