// Package rpc exposes the engine as a single unary gRPC method: an
// in-memory .proto schema parsed with jhump/protoreflect's protoparse,
// dynamic request/response messages, and a hand-assembled
// grpc.ServiceDesc — there is no generated *.pb.go pair here, since the
// schema is fixed at compile time but never run through protoc.
package rpc

import (
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
)

const schemaFile = "sidefx.proto"

// schema is the wire contract for one Analyze call: a document plus an
// optional config blob in, a flat diagnostic list out. Kept intentionally
// minimal — this is the daemon's transport, not a general protobuf API.
const schema = `syntax = "proto3";
package sidefx;

message AnalyzeRequest {
  bytes document = 1;
  bytes config = 2;
}

message Diagnostic {
  string message = 1;
  int32 line = 2;
  int32 column = 3;
}

message AnalyzeResponse {
  repeated Diagnostic diagnostics = 1;
}

service Analyzer {
  rpc Analyze(AnalyzeRequest) returns (AnalyzeResponse);
}
`

// ServiceDescriptor parses the embedded schema and returns the Analyzer
// service's descriptor, from which the gRPC server build its ServiceDesc
// and dynamic messages decode/encode their fields.
func ServiceDescriptor() (*desc.ServiceDescriptor, error) {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{schemaFile: schema}),
	}
	fds, err := parser.ParseFiles(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("rpc: parsing embedded schema: %w", err)
	}
	if len(fds) == 0 {
		return nil, fmt.Errorf("rpc: embedded schema produced no file descriptor")
	}
	services := fds[0].GetServices()
	for _, svc := range services {
		if svc.GetName() == "Analyzer" {
			return svc, nil
		}
	}
	return nil, fmt.Errorf("rpc: schema has no Analyzer service")
}
