// Package proto describes the WorkerProvisioningService wire contract.
//
// Messages are google.protobuf.Struct values so worker and user payloads
// stay opaque key-value documents end to end; the service descriptor and
// client stub below are what protoc-gen-go-grpc would emit for:
//
//	service WorkerProvisioningService {
//	  rpc CreateWorkerAccount(google.protobuf.Struct) returns (google.protobuf.Struct);
//	  rpc Ping(google.protobuf.Struct) returns (google.protobuf.Struct);
//	}
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "gophworker.service.WorkerProvisioningService"

const (
	WorkerProvisioningService_CreateWorkerAccount_FullMethodName = "/" + ServiceName + "/CreateWorkerAccount"
	WorkerProvisioningService_Ping_FullMethodName                = "/" + ServiceName + "/Ping"
)

// WorkerProvisioningServiceServer is the server API for WorkerProvisioningService.
type WorkerProvisioningServiceServer interface {
	CreateWorkerAccount(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedWorkerProvisioningServiceServer can be embedded to have
// forward compatible implementations.
type UnimplementedWorkerProvisioningServiceServer struct{}

func (UnimplementedWorkerProvisioningServiceServer) CreateWorkerAccount(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateWorkerAccount not implemented")
}

func (UnimplementedWorkerProvisioningServiceServer) Ping(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func RegisterWorkerProvisioningServiceServer(s grpc.ServiceRegistrar, srv WorkerProvisioningServiceServer) {
	s.RegisterService(&WorkerProvisioningService_ServiceDesc, srv)
}

func _WorkerProvisioningService_CreateWorkerAccount_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerProvisioningServiceServer).CreateWorkerAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkerProvisioningService_CreateWorkerAccount_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WorkerProvisioningServiceServer).CreateWorkerAccount(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkerProvisioningService_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerProvisioningServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkerProvisioningService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WorkerProvisioningServiceServer).Ping(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// WorkerProvisioningService_ServiceDesc is the grpc.ServiceDesc for WorkerProvisioningService.
var WorkerProvisioningService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WorkerProvisioningServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateWorkerAccount",
			Handler:    _WorkerProvisioningService_CreateWorkerAccount_Handler,
		},
		{
			MethodName: "Ping",
			Handler:    _WorkerProvisioningService_Ping_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "worker_provisioning.proto",
}

// WorkerProvisioningServiceClient is the client API for WorkerProvisioningService.
type WorkerProvisioningServiceClient interface {
	CreateWorkerAccount(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type workerProvisioningServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWorkerProvisioningServiceClient(cc grpc.ClientConnInterface) WorkerProvisioningServiceClient {
	return &workerProvisioningServiceClient{cc}
}

func (c *workerProvisioningServiceClient) CreateWorkerAccount(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, WorkerProvisioningService_CreateWorkerAccount_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workerProvisioningServiceClient) Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, WorkerProvisioningService_Ping_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
