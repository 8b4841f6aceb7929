// Package pydesc recovers protocol buffer schemas from generated Python
// protobuf modules.
//
// A module generated by protoc's Python plugin does not carry its source
// .proto file, but it does embed the file's serialized FileDescriptorProto
// as a bytes literal: current generators pass it to AddSerializedFile,
// older ones to a serialized_pb keyword argument. Decoding that literal
// recovers the complete schema, and following each descriptor's dependency
// declarations recovers everything it imports. For schemas whose .proto
// sources were never published, this is the only way back to a usable
// descriptor set.
package pydesc

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// serializedFileMarkers precede the embedded descriptor in the emission
// styles protoc has used for Python code: the descriptor-pool call of
// current generators and the FileDescriptor keyword argument of older ones.
var serializedFileMarkers = []string{
	"AddSerializedFile(",
	"serialized_pb=",
}

// LoadModule reads the generated Python module at path and returns the file
// descriptor embedded in it.
func LoadModule(path string) (*descriptorpb.FileDescriptorProto, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := extractSerialized(src)
	if err != nil {
		return nil, err
	}
	var fd descriptorpb.FileDescriptorProto
	if err := proto.Unmarshal(raw, &fd); err != nil {
		return nil, fmt.Errorf("embedded descriptor is not a valid FileDescriptorProto: %v", err)
	}
	return &fd, nil
}

func extractSerialized(src []byte) ([]byte, error) {
	for _, marker := range serializedFileMarkers {
		idx := bytes.Index(src, []byte(marker))
		if idx < 0 {
			continue
		}
		lit := skipPySpace(src[idx+len(marker):])
		// protobuf 2.x era generators routed the literal through a
		// py2/py3 compatibility shim.
		if bytes.HasPrefix(lit, []byte("_b(")) {
			lit = skipPySpace(lit[len("_b("):])
		}
		val, err := parseBytesLiteral(lit)
		if err != nil {
			return nil, fmt.Errorf("serialized descriptor after %q: %v", marker, err)
		}
		return val, nil
	}
	return nil, errors.New("no serialized descriptor found")
}
