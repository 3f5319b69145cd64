package client

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophworker/internal/common"
	pb "github.com/dmitrijs2005/gophworker/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	// inputs captured
	lastCreateReq *structpb.Struct
	lastPingReq   *structpb.Struct

	// outputs preset
	createResp *structpb.Struct
	createErr  error

	pingResp *structpb.Struct
	pingErr  error
}

func (f *fakePB) CreateWorkerAccount(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	f.lastCreateReq = in
	return f.createResp, f.createErr
}
func (f *fakePB) Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	f.lastPingReq = in
	return f.pingResp, f.pingErr
}

func pingStatus(s string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{pb.FieldStatus: structpb.NewStringValue(s)}}
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_AttachesToken(t *testing.T) {
	c := &GRPCClient{accessToken: "A1"}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Equal(t, []string{"A1"}, toks)
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
}

func TestInterceptor_ReplacesExistingToken(t *testing.T) {
	c := &GRPCClient{accessToken: "A2"}
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "stale", "x-other", "keep")

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Equal(t, []string{"A2"}, md.Get(common.AccessTokenHeaderName))
		require.Equal(t, []string{"keep"}, md.Get("x-other"))
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(ctx, "/svc/Method", nil, nil, nil, invoker))
}

func TestInterceptor_NoTokenNoHeader(t *testing.T) {
	c := &GRPCClient{}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.AccessTokenHeaderName))
		return status.Error(codes.Internal, "boom")
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	require.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "x")), ErrUnauthorized)
	require.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "missing required fields: email")), ErrInvalidRequest)
	require.ErrorContains(t, c.mapError(status.Error(codes.InvalidArgument, "missing required fields: email")), "missing required fields: email")
	require.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), ErrAlreadyExists)
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(context.DeadlineExceeded))
	require.Nil(t, c.mapError(nil))
	e := errors.New("plain")
	require.ErrorContains(t, c.mapError(e), "rpc error:")
}

/*************
 * Ping tests
 *************/

func TestPing_OK(t *testing.T) {
	f := &fakePB{pingResp: pingStatus("OK")}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_NotOK_ReturnsUnavailable(t *testing.T) {
	f := &fakePB{pingResp: pingStatus("NOT_OK")}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestPing_MapsRPCError(t *testing.T) {
	f := &fakePB{pingErr: status.Error(codes.Unavailable, "down")}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

/*************
 * CreateWorkerAccount tests
 *************/

func TestCreateWorkerAccount_OK(t *testing.T) {
	f := &fakePB{createResp: (&pb.CreateWorkerAccountResponse{
		Success:   true,
		WorkerUID: "uid-1",
		WorkerID:  "HM_0001",
		Message:   "Worker account created successfully",
	}).ToStruct()}
	c := &GRPCClient{client: f}

	resp, err := c.CreateWorkerAccount(context.Background(), &pb.CreateWorkerAccountRequest{
		Email:      "w@x.com",
		Password:   "pw",
		WorkerData: map[string]any{"name": "Ann"},
		UserData:   map[string]any{},
	})
	require.NoError(t, err)
	require.Equal(t, "HM_0001", resp.WorkerID)
	require.True(t, resp.Success)

	sent := pb.CreateWorkerAccountRequestFromStruct(f.lastCreateReq)
	require.Equal(t, "w@x.com", sent.Email)
	require.Equal(t, map[string]any{"name": "Ann"}, sent.WorkerData)
}

func TestCreateWorkerAccount_MapsRPCError(t *testing.T) {
	f := &fakePB{createErr: status.Error(codes.AlreadyExists, "worker with this email already exists")}
	c := &GRPCClient{client: f}

	_, err := c.CreateWorkerAccount(context.Background(), &pb.CreateWorkerAccountRequest{Email: "e"})
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateWorkerAccount_UnencodablePayload(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	_, err := c.CreateWorkerAccount(context.Background(), &pb.CreateWorkerAccountRequest{
		WorkerData: map[string]any{"ch": make(chan int)},
	})
	require.ErrorIs(t, err, ErrInvalidRequest)
	require.Nil(t, f.lastCreateReq)
}

func TestNewWorkerProvisioningClient_LazyConnect(t *testing.T) {
	c, err := NewWorkerProvisioningClient("127.0.0.1:0", "tok")
	require.NoError(t, err)
	require.NoError(t, c.Close())
}
