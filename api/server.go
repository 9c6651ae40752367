package api

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	debugServiceName    = "coffeeshop.v1.Debug"
	debugSnapshotMethod = "/" + debugServiceName + "/Snapshot"
	debugWatchMethod    = "/" + debugServiceName + "/Watch"
)

// DebugServer exposes state dumps over gRPC.
type DebugServer interface {
	Snapshot(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Watch(*emptypb.Empty, grpc.ServerStream) error
}

type Server struct {
	panel *Panel
}

func RegisterNewDebugServer(gsr grpc.ServiceRegistrar, p *Panel) error {
	if p == nil {
		return errors.New("debug server needs a panel")
	}
	gsr.RegisterService(&debugServiceDesc, &Server{panel: p})
	return nil
}

func (s *Server) Snapshot(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	d, err := s.panel.Latest()
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	return d.State, nil
}

// Watch streams the current dump, if any, then every new one until the
// client goes away.
func (s *Server) Watch(_ *emptypb.Empty, stream grpc.ServerStream) error {
	dumps, cancel := s.panel.Watch()
	defer cancel()

	var sent uint64
	if d, err := s.panel.Latest(); err == nil {
		if err := stream.SendMsg(d.State); err != nil {
			return err
		}
		sent = d.Seq
	}

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case d := <-dumps:
			if d.Seq <= sent {
				continue
			}
			if err := stream.SendMsg(d.State); err != nil {
				return err
			}
			sent = d.Seq
		}
	}
}

var debugServiceDesc = grpc.ServiceDesc{
	ServiceName: debugServiceName,
	HandlerType: (*DebugServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Snapshot", Handler: debugSnapshotHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Watch", Handler: debugWatchHandler, ServerStreams: true},
	},
}

func debugSnapshotHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DebugServer).Snapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: debugSnapshotMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DebugServer).Snapshot(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func debugWatchHandler(srv any, stream grpc.ServerStream) error {
	in := new(emptypb.Empty)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(DebugServer).Watch(in, stream)
}
