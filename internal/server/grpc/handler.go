package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophworker/internal/common"
	pb "github.com/dmitrijs2005/gophworker/internal/proto"
	"github.com/dmitrijs2005/gophworker/internal/server/models"
	"github.com/dmitrijs2005/gophworker/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func (s *GRPCServer) CreateWorkerAccount(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	caller := callerFromContext(ctx)
	in := pb.CreateWorkerAccountRequestFromStruct(req)

	result, err := s.provisioning.CreateWorkerAccount(ctx, caller.Authenticated(), services.CreateWorkerRequest{
		Email:      in.Email,
		Password:   in.Password,
		WorkerData: models.Payload(in.WorkerData),
		UserData:   models.Payload(in.UserData),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Worker provisioned",
		"request_id", requestIDFromContext(ctx),
		"caller", caller.ID,
		"uid", result.WorkerUID,
		"worker_id", result.WorkerID,
		"already_exists", result.AlreadyExists,
	)

	resp := &pb.CreateWorkerAccountResponse{
		Success:       result.Success,
		WorkerUID:     result.WorkerUID,
		WorkerID:      result.WorkerID,
		Message:       result.Message,
		AlreadyExists: result.AlreadyExists,
	}
	return resp.ToStruct(), nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		pb.FieldStatus: structpb.NewStringValue("OK"),
	}}, nil

}

// toStatus maps a service error onto its gRPC status; unclassified errors
// become Internal.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorInternal):
		return status.Error(codes.Internal, err.Error())
	case errors.Is(err, common.ErrorUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
