package genxaiprotos

import (
	"strings"

	"github.com/zchee/xai-sdk-go/toolchain"
)

// mappingOpts renders one Mfile=package option per schema, in protoFiles
// order.
func mappingOpts() string {
	opts := make([]string, len(protoFiles))
	for i, pf := range protoFiles {
		opts[i] = "M" + pf + "=" + protoPackages[pf].ImportPath
	}
	return strings.Join(opts, ",")
}

// The module= option makes each plugin strip the module path from its
// output locations, so the bindings land directly below the module root.

func goOpt() string {
	return "module=" + goModule + "," + mappingOpts()
}

func grpcOpt() string {
	return "module=" + goModule + ",require_unimplemented_servers=true," + mappingOpts()
}

func vtOpt() string {
	return "module=" + goModule + ",features=" + vtFeatures + "," + mappingOpts()
}

// protocArgs assembles the full protoc invocation: the descriptor set
// standing in for source protos, the schemas to generate, a pin for every
// plugin executable, and one out/opt pair per plugin.
func protocArgs(tools *toolchain.Toolchain, p paths) []string {
	args := []string{"--descriptor_set_in=" + p.desc}
	args = append(args, protoFiles...)
	for _, plugin := range generatorPlugins {
		args = append(args, "--plugin="+plugin+"="+tools.Path(plugin))
	}
	return append(args,
		"--go_out="+p.root,
		"--go_opt="+goOpt(),
		"--go-grpc_out="+p.root,
		"--go-grpc_opt="+grpcOpt(),
		"--go-vtproto_out="+p.root,
		"--go-vtproto_opt="+vtOpt(),
	)
}
