package rpc

import (
	"context"
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"

	"github.com/sidefxlint/sidefxlint/pkg/sidefx"
)

// analyzerHandler implements the Analyzer service's single method against
// dynamic messages built from the embedded schema: decode the dynamic
// request, run the real work, encode a dynamic response.
type analyzerHandler struct {
	method *desc.MethodDescriptor
}

func (h *analyzerHandler) handleAnalyze(ctx context.Context, dec func(interface{}) error) (interface{}, error) {
	req := dynamic.NewMessage(h.method.GetInputType())
	if err := dec(req); err != nil {
		return nil, err
	}

	document, _ := req.TryGetFieldByName("document")
	documentBytes, _ := document.([]byte)

	var opts sidefx.Options
	if config, _ := req.TryGetFieldByName("config"); config != nil {
		if configBytes, ok := config.([]byte); ok && len(configBytes) > 0 {
			entries, err := parseConfigBytes(configBytes)
			if err != nil {
				return nil, err
			}
			opts.Entries = entries
		}
	}

	diags, err := sidefx.Analyze(documentBytes, opts)
	if err != nil {
		return nil, fmt.Errorf("rpc: analyze: %w", err)
	}

	resp := dynamic.NewMessage(h.method.GetOutputType())
	diagField := h.method.GetOutputType().FindFieldByName("diagnostics")
	diagType := diagField.GetMessageType()
	for _, d := range diags {
		msg := dynamic.NewMessage(diagType)
		loc := d.Node.GetLoc()
		_ = msg.TrySetFieldByName("message", d.Message)
		_ = msg.TrySetFieldByName("line", int32(loc.Start.Line))
		_ = msg.TrySetFieldByName("column", int32(loc.Start.Column))
		_ = resp.TryAddRepeatedFieldByName("diagnostics", msg)
	}
	return resp, nil
}

// NewServer builds a *grpc.Server with the Analyzer service registered
// against the embedded schema, assembling a grpc.ServiceDesc from a parsed
// descriptor at runtime instead of from generated *.pb.go stubs.
func NewServer() (*grpc.Server, error) {
	svc, err := ServiceDescriptor()
	if err != nil {
		return nil, err
	}
	method := svc.FindMethodByName("Analyze")
	if method == nil {
		return nil, fmt.Errorf("rpc: schema has no Analyze method")
	}
	handler := &analyzerHandler{method: method}

	serviceDesc := &grpc.ServiceDesc{
		ServiceName: "sidefx.Analyzer",
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "Analyze",
				Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
					return srv.(*analyzerHandler).handleAnalyze(ctx, dec)
				},
			},
		},
		Metadata: schemaFile,
	}

	server := grpc.NewServer()
	server.RegisterService(serviceDesc, handler)
	return server, nil
}
