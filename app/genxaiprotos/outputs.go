package genxaiprotos

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// Filename suffixes used by the generator plugins.
const (
	goSuffix      = ".pb.go"
	grpcSuffix    = "_grpc.pb.go"
	vtprotoSuffix = "_vtproto.pb.go"
)

// outputFilename computes where a plugin's output for protoFile lands,
// relative to the module root: the schema's mapped import path with the
// module path stripped, then the schema's base name plus the plugin's
// suffix.
func outputFilename(protoFile, suffix string) string {
	outputPath := strings.TrimPrefix(protoPackages[protoFile].ImportPath, goModule+"/")

	name := path.Base(protoFile)
	if ext := path.Ext(name); ext == ".proto" || ext == ".protodevel" {
		name = name[:len(name)-len(ext)]
	}
	name += suffix

	return path.Join(outputPath, name)
}

// expectedOutputs lists the bindings a run must produce, relative to the
// module root. Every schema gets base bindings; grpc stubs appear only for
// schemas that declare services and vtproto helpers only for schemas that
// declare messages, since those plugins skip files with nothing to emit.
func expectedOutputs(fdSet *descriptorpb.FileDescriptorSet) []string {
	byName := make(map[string]*descriptorpb.FileDescriptorProto, len(fdSet.GetFile()))
	for _, fd := range fdSet.GetFile() {
		byName[fd.GetName()] = fd
	}
	var outputs []string
	for _, pf := range protoFiles {
		outputs = append(outputs, outputFilename(pf, goSuffix))
		fd := byName[pf]
		if len(fd.GetService()) > 0 {
			outputs = append(outputs, outputFilename(pf, grpcSuffix))
		}
		if len(fd.GetMessageType()) > 0 {
			outputs = append(outputs, outputFilename(pf, vtprotoSuffix))
		}
	}
	return outputs
}

// verifyOutputs confirms every expected binding exists below root; protoc
// can exit zero even when a plugin wrote nothing.
func verifyOutputs(root string, fdSet *descriptorpb.FileDescriptorSet) error {
	for _, rel := range expectedOutputs(fdSet) {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("generated file missing: %s", rel)
			}
			return err
		}
	}
	return nil
}
