package pydesc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhump/protoreflect/desc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Set accumulates file descriptors into a deduplicated, dependency-closed
// FileDescriptorSet.
type Set struct {
	index *Index
	seen  map[string]struct{}
	files []*descriptorpb.FileDescriptorProto
}

// NewSet returns an empty Set that resolves dependency names against index.
func NewSet(index *Index) *Set {
	return &Set{
		index: index,
		seen:  map[string]struct{}{},
	}
}

// Add appends fd and then, depth-first, every descriptor reachable through
// dependency declarations. A file name already in the set is skipped, so
// shared and even cyclic dependency edges are walked at most once.
func (s *Set) Add(fd *descriptorpb.FileDescriptorProto) error {
	if _, ok := s.seen[fd.GetName()]; ok {
		return nil
	}
	s.seen[fd.GetName()] = struct{}{}
	s.files = append(s.files, fd)
	for _, dep := range fd.GetDependency() {
		depFd, err := s.resolve(dep)
		if err != nil {
			return err
		}
		if err := s.Add(depFd); err != nil {
			return err
		}
	}
	return nil
}

// resolve finds the descriptor for a dependency name: first among the
// scanned modules, then in the process's descriptor registry, which
// supplies the well-known types the same way Python's default descriptor
// pool does.
func (s *Set) resolve(name string) (*descriptorpb.FileDescriptorProto, error) {
	if fd, ok := s.index.File(name); ok {
		return fd, nil
	}
	fd, err := protoregistry.GlobalFiles.FindFileByPath(name)
	if err != nil {
		return nil, fmt.Errorf("could not find dependency %q", name)
	}
	return protodesc.ToFileDescriptorProto(fd), nil
}

// Contains reports whether a file named name has been added.
func (s *Set) Contains(name string) bool {
	_, ok := s.seen[name]
	return ok
}

// Len returns the number of files accumulated so far.
func (s *Set) Len() int {
	return len(s.files)
}

// FileDescriptorSet returns the accumulated files in insertion order.
func (s *Set) FileDescriptorSet() *descriptorpb.FileDescriptorSet {
	return &descriptorpb.FileDescriptorSet{File: s.files}
}

// Link verifies that the set is self-contained by reconstructing the full
// descriptor of every file from set members alone. A missing transitive
// dependency or an import cycle fails the check.
func (s *Set) Link() error {
	byName := make(map[string]*descriptorpb.FileDescriptorProto, len(s.files))
	for _, fd := range s.files {
		byName[fd.GetName()] = fd
	}
	linked := map[string]*desc.FileDescriptor{}
	for _, fd := range s.files {
		if _, err := linkFile(fd.GetName(), byName, linked, nil); err != nil {
			return err
		}
	}
	return nil
}

func linkFile(fileName string, fds map[string]*descriptorpb.FileDescriptorProto, linkedFds map[string]*desc.FileDescriptor, seen []string) (*desc.FileDescriptor, error) {
	for _, name := range seen {
		if fileName == name {
			seen = append(seen, fileName)
			return nil, fmt.Errorf("cyclic imports: %v", strings.Join(seen, " -> "))
		}
	}
	seen = append(seen, fileName)
	if fd, ok := linkedFds[fileName]; ok {
		return fd, nil
	}
	fdUnlinked, ok := fds[fileName]
	if !ok {
		return nil, fmt.Errorf("could not find dependency %q", fileName)
	}
	deps := make([]*desc.FileDescriptor, len(fdUnlinked.Dependency))
	for i, dep := range fdUnlinked.Dependency {
		var err error
		deps[i], err = linkFile(dep, fds, linkedFds, seen)
		if err != nil {
			return nil, err
		}
	}
	fd, err := desc.CreateFileDescriptor(fdUnlinked, deps...)
	if err == nil {
		linkedFds[fileName] = fd
	}
	return fd, err
}

// Save writes the marshaled set to dest, creating parent directories as
// needed, and reports the serialized size in bytes.
func (s *Set) Save(dest string) (int, error) {
	b, err := proto.Marshal(s.FileDescriptorSet())
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return 0, err
	}
	if err := os.WriteFile(dest, b, 0666); err != nil {
		return 0, err
	}
	return len(b), nil
}
