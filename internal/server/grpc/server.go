// Package grpc exposes the provisioning service over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophworker/internal/logging"
	pb "github.com/dmitrijs2005/gophworker/internal/proto"
	"github.com/dmitrijs2005/gophworker/internal/server/services"
	"google.golang.org/grpc"
)

type provisioner interface {
	CreateWorkerAccount(ctx context.Context, callerAuthenticated bool, req services.CreateWorkerRequest) (*services.CreateWorkerResult, error)
}

type GRPCServer struct {
	pb.UnimplementedWorkerProvisioningServiceServer
	address        string
	provisioning   provisioner
	logger         logging.Logger
	jwtSecret      []byte
	requestTimeout time.Duration
}

func NewGRPCServer(a string, l logging.Logger, ps provisioner, secretKey string, requestTimeout time.Duration) *GRPCServer {
	return &GRPCServer{
		address:        a,
		logger:         l.With("module", "grpc_server"),
		provisioning:   ps,
		jwtSecret:      []byte(secretKey),
		requestTimeout: requestTimeout,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestLogInterceptor,
		s.timeoutInterceptor,
		s.accessTokenInterceptor,
	))
	pb.RegisterWorkerProvisioningServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
