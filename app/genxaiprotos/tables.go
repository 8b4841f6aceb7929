package genxaiprotos

import (
	"github.com/jhump/gopoet"
)

// goModule is the Go module whose tree receives the generated bindings.
const goModule = "github.com/zchee/xai-sdk-go"

const (
	upstreamURL = "https://github.com/xai-org/xai-sdk-python.git"
	defaultRef  = "main"
)

// Environment variables that adjust a run.
const (
	refEnv       = "XAI_SDK_PYTHON_REF"
	tmpEnv       = "XAI_PY_PROTO_TMP"
	toolchainEnv = "XAI_PROTO_TOOLCHAIN"
)

// generatorPlugins are the protoc plugins a run drives, in the order their
// outputs are requested on the protoc command line.
var generatorPlugins = []string{
	"protoc-gen-go",
	"protoc-gen-go-grpc",
	"protoc-gen-go-vtproto",
}

// requiredTools is every executable a run depends on. All of them are
// resolved before the run has any side effects.
var requiredTools = append([]string{"git", "protoc"}, generatorPlugins...)

// protoFiles are the schemas embedded in xai-sdk-python but absent from
// the published xai-proto collection.
var protoFiles = []string{
	"xai/api/v1/collections.proto",
	"xai/api/v1/shared.proto",
	"xai/api/v1/types.proto",
}

// protoPackages maps each schema to the Go package its bindings land in.
// The types schema keeps its historical ragpb home.
var protoPackages = map[string]gopoet.Package{
	"xai/api/v1/collections.proto": {ImportPath: goModule + "/api/v1/collectionspb", Name: "collectionspb"},
	"xai/api/v1/shared.proto":      {ImportPath: goModule + "/api/v1/sharedpb", Name: "sharedpb"},
	"xai/api/v1/types.proto":       {ImportPath: goModule + "/api/v1/ragpb", Name: "ragpb"},
}

// rootModules are the generated Python modules whose descriptors seed the
// set. Their order is part of the output: each root is listed before the
// dependencies it pulls in, and later roots add only what is still unseen.
var rootModules = []string{
	"xai_sdk.proto.v6.collections_pb2",
	"xai_sdk.proto.v6.types_pb2",
	"xai_sdk.proto.v6.shared_pb2",
}

// vtFeatures selects the accessor families protoc-gen-go-vtproto emits.
const vtFeatures = "size+equal+marshal+marshal_strict+unmarshal+unmarshal_unsafe+clone+pool"
