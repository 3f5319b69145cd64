package client

import (
	"context"

	pb "github.com/dmitrijs2005/gophworker/internal/proto"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	CreateWorkerAccount(ctx context.Context, req *pb.CreateWorkerAccountRequest) (*pb.CreateWorkerAccountResponse, error)
}
