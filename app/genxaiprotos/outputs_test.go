package genxaiprotos

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

func TestOutputFilename(t *testing.T) {
	testCases := []struct {
		protoFile string
		suffix    string
		expected  string
	}{
		{"xai/api/v1/collections.proto", goSuffix, "api/v1/collectionspb/collections.pb.go"},
		{"xai/api/v1/collections.proto", grpcSuffix, "api/v1/collectionspb/collections_grpc.pb.go"},
		{"xai/api/v1/collections.proto", vtprotoSuffix, "api/v1/collectionspb/collections_vtproto.pb.go"},
		{"xai/api/v1/shared.proto", goSuffix, "api/v1/sharedpb/shared.pb.go"},
		{"xai/api/v1/types.proto", goSuffix, "api/v1/ragpb/types.pb.go"},
		{"xai/api/v1/types.proto", vtprotoSuffix, "api/v1/ragpb/types_vtproto.pb.go"},
	}

	for _, testCase := range testCases {
		if got := outputFilename(testCase.protoFile, testCase.suffix); got != testCase.expected {
			t.Errorf("outputFilename(%q, %q): expected %q, got %q",
				testCase.protoFile, testCase.suffix, testCase.expected, got)
		}
	}
}

// generatedSet mirrors the shape of the real schemas: collections carries
// a service, shared only an enum, types only messages.
func generatedSet() *descriptorpb.FileDescriptorSet {
	return &descriptorpb.FileDescriptorSet{File: []*descriptorpb.FileDescriptorProto{
		{
			Name:        proto.String("xai/api/v1/collections.proto"),
			MessageType: []*descriptorpb.DescriptorProto{{Name: proto.String("CollectionMetadata")}},
			Service:     []*descriptorpb.ServiceDescriptorProto{{Name: proto.String("Collections")}},
		},
		{
			Name:     proto.String("xai/api/v1/shared.proto"),
			EnumType: []*descriptorpb.EnumDescriptorProto{{Name: proto.String("Ordering")}},
		},
		{
			Name:        proto.String("xai/api/v1/types.proto"),
			MessageType: []*descriptorpb.DescriptorProto{{Name: proto.String("ChunkConfiguration")}},
		},
	}}
}

func TestExpectedOutputs(t *testing.T) {
	got := expectedOutputs(generatedSet())
	want := []string{
		"api/v1/collectionspb/collections.pb.go",
		"api/v1/collectionspb/collections_grpc.pb.go",
		"api/v1/collectionspb/collections_vtproto.pb.go",
		"api/v1/sharedpb/shared.pb.go",
		"api/v1/ragpb/types.pb.go",
		"api/v1/ragpb/types_vtproto.pb.go",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected outputs:\n%q\ngot:\n%q", want, got)
	}
}

func TestVerifyOutputs(t *testing.T) {
	root := t.TempDir()
	fdSet := generatedSet()
	for _, rel := range expectedOutputs(fdSet) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("// generated\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := verifyOutputs(root, fdSet); err != nil {
		t.Fatal(err)
	}

	missing := filepath.Join(root, "api", "v1", "ragpb", "types_vtproto.pb.go")
	if err := os.Remove(missing); err != nil {
		t.Fatal(err)
	}
	err := verifyOutputs(root, fdSet)
	if err == nil {
		t.Fatal("expected an error")
	}
	if got, want := err.Error(), "generated file missing: api/v1/ragpb/types_vtproto.pb.go"; got != want {
		t.Errorf("expected error %q, got %q", want, got)
	}
}
