package pydesc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zchee/xai-sdk-go/pydesc"
)

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeModule(t, root, "xai_sdk/proto/v6/types_pb2.py", fileDescriptor("xai/api/v1/types.proto"))
	writeModule(t, root, "xai_sdk/proto/v6/shared_pb2.py", fileDescriptor("xai/api/v1/shared.proto", "xai/api/v1/types.proto"))

	ix, err := pydesc.Scan(root)
	require.NoError(t, err)

	fd, ok := ix.File("xai/api/v1/types.proto")
	require.True(t, ok)
	assert.Equal(t, "xai/api/v1/types.proto", fd.GetName())

	fd, ok = ix.File("xai/api/v1/shared.proto")
	require.True(t, ok)
	assert.Equal(t, []string{"xai/api/v1/types.proto"}, fd.GetDependency())

	_, ok = ix.File("xai/api/v1/absent.proto")
	assert.False(t, ok)
}

func TestScanFirstOccurrenceWins(t *testing.T) {
	root := t.TempDir()
	first := fileDescriptor("xai/api/v1/types.proto")
	second := fileDescriptor("xai/api/v1/types.proto")
	second.Package = nil
	// The walk is lexical, so the aliases directory is visited first.
	writeModule(t, root, "xai_sdk/aliases/types_pb2.py", first)
	writeModule(t, root, "xai_sdk/proto/v6/types_pb2.py", second)

	ix, err := pydesc.Scan(root)
	require.NoError(t, err)

	fd, ok := ix.File("xai/api/v1/types.proto")
	require.True(t, ok)
	assert.Equal(t, "xai.api.v1", fd.GetPackage())
}

func TestScanIgnoresOtherSources(t *testing.T) {
	root := t.TempDir()
	writeModule(t, root, "xai_sdk/proto/v6/types_pb2.py", fileDescriptor("xai/api/v1/types.proto"))
	// Hand-written modules and gRPC stubs carry no embedded descriptor.
	writeRaw(t, root, "xai_sdk/proto/v6/types_pb2_grpc.py", "import grpc\n")
	writeRaw(t, root, "xai_sdk/client.py", "class Client:\n    pass\n")

	ix, err := pydesc.Scan(root)
	require.NoError(t, err)

	_, ok := ix.File("xai/api/v1/types.proto")
	assert.True(t, ok)
}

func TestScanReportsBrokenModule(t *testing.T) {
	root := t.TempDir()
	writeRaw(t, root, "xai_sdk/proto/v6/types_pb2.py",
		"DESCRIPTOR = _descriptor_pool.Default().AddSerializedFile(b'unterminated\n")

	_, err := pydesc.Scan(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "types_pb2.py")
}

func TestScanMissingRoot(t *testing.T) {
	_, err := pydesc.Scan("/nonexistent/xai-sdk-python/src")
	assert.Error(t, err)
}

func TestIndexModule(t *testing.T) {
	root := t.TempDir()
	fd := fileDescriptor("xai/api/v1/types.proto")
	writeModule(t, root, "xai_sdk/proto/v6/types_pb2.py", fd)

	ix, err := pydesc.Scan(root)
	require.NoError(t, err)

	got, err := ix.Module("xai_sdk.proto.v6.types_pb2")
	require.NoError(t, err)
	assert.Equal(t, fd.GetName(), got.GetName())

	_, err = ix.Module("xai_sdk.proto.v6.absent_pb2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xai_sdk.proto.v6.absent_pb2")
}
