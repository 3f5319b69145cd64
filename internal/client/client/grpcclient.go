package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophworker/internal/common"
	pb "github.com/dmitrijs2005/gophworker/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.WorkerProvisioningServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewWorkerProvisioningClient connects to endpointURL. accessToken may be
// empty, in which case calls are made anonymously.
func NewWorkerProvisioningClient(endpointURL, accessToken string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}
	err := c.InitGRPCClient(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewWorkerProvisioningServiceClient(conn)
	return nil
}

func (s *GRPCClient) CreateWorkerAccount(ctx context.Context, req *pb.CreateWorkerAccountRequest) (*pb.CreateWorkerAccountResponse, error) {

	in, err := req.ToStruct()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	resp, err := s.client.CreateWorkerAccount(ctx, in)
	if err != nil {
		return nil, s.mapError(err)
	}

	return pb.CreateWorkerAccountResponseFromStruct(resp), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &structpb.Struct{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetFields()[pb.FieldStatus].GetStringValue() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrUnavailable
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
