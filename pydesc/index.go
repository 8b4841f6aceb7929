package pydesc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Index holds the descriptors recovered from every generated module below
// one directory, the way an entry on Python's import search path makes
// every module under it importable.
type Index struct {
	root   string
	byName map[string]*descriptorpb.FileDescriptorProto
	byPath map[string]*descriptorpb.FileDescriptorProto
}

// Scan walks root for generated modules ("*_pb2.py" files) and decodes the
// descriptor embedded in each. Descriptors are indexed both by the module
// file's path and by the proto file name they declare; when two modules
// embed the same file name, the one earliest in walk order wins.
func Scan(root string) (*Index, error) {
	matches, err := doublestar.Glob(os.DirFS(root), "**/*_pb2.py",
		doublestar.WithFailOnIOErrors(), doublestar.WithFailOnPatternNotExist())
	if err != nil {
		return nil, err
	}

	// Modules decode independently, so load them in parallel and index
	// afterwards in walk order.
	fds := make([]*descriptorpb.FileDescriptorProto, len(matches))
	var grp errgroup.Group
	for i, rel := range matches {
		i, rel := i, rel
		grp.Go(func() error {
			fd, err := LoadModule(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return fmt.Errorf("%s: %v", rel, err)
			}
			fds[i] = fd
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	ix := &Index{
		root:   root,
		byName: make(map[string]*descriptorpb.FileDescriptorProto, len(matches)),
		byPath: make(map[string]*descriptorpb.FileDescriptorProto, len(matches)),
	}
	for i, rel := range matches {
		fd := fds[i]
		ix.byPath[rel] = fd
		if _, ok := ix.byName[fd.GetName()]; !ok {
			ix.byName[fd.GetName()] = fd
		}
	}
	return ix, nil
}

// Module returns the descriptor embedded in the module with the given
// dotted Python name, e.g. "xai_sdk.proto.v6.collections_pb2".
func (ix *Index) Module(module string) (*descriptorpb.FileDescriptorProto, error) {
	rel := strings.ReplaceAll(module, ".", "/") + ".py"
	fd, ok := ix.byPath[rel]
	if !ok {
		return nil, fmt.Errorf("no generated module %s below %s", module, ix.root)
	}
	return fd, nil
}

// File returns the descriptor declaring the given proto file name, if any
// scanned module embeds it.
func (ix *Index) File(name string) (*descriptorpb.FileDescriptorProto, bool) {
	if ix == nil {
		return nil, false
	}
	fd, ok := ix.byName[name]
	return fd, ok
}
