// Command gen-xai-protos regenerates the Go bindings for proto files that
// are not published in xai-proto but are embedded as descriptors inside
// the xai-sdk-python package. It shallow-clones the SDK, recovers the
// serialized descriptors from its generated modules, assembles them into a
// self-contained FileDescriptorSet, and drives protoc with the go,
// go-grpc, and go-vtproto plugins over that set.
//
// A run is adjusted through environment variables:
//
//	XAI_SDK_PYTHON_REF   git ref of xai-sdk-python to clone (default main)
//	XAI_PY_PROTO_TMP     base directory for the scratch workspace
//	XAI_PROTO_TOOLCHAIN  path to a YAML toolchain config
package main

import "github.com/zchee/xai-sdk-go/app/genxaiprotos"

func main() {
	genxaiprotos.Main()
}
