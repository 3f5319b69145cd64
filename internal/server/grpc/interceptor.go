package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophworker/internal/common"
	pb "github.com/dmitrijs2005/gophworker/internal/proto"
	"github.com/dmitrijs2005/gophworker/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "requestID"
)

// callerFromContext returns the verified caller, or the zero Caller when the
// request carried no session token.
func callerFromContext(ctx context.Context) auth.Caller {
	c, _ := ctx.Value(callerKey).(auth.Caller)
	return c
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// accessTokenInterceptor resolves the caller of CreateWorkerAccount.
// A missing token yields an anonymous caller and the service decides;
// a token that fails verification is rejected here.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if info.FullMethod != pb.WorkerProvisioningService_CreateWorkerAccount_FullMethodName {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return handler(ctx, req)
	}

	caller, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		s.logger.Debug(ctx, "token rejected", "request_id", requestIDFromContext(ctx), "error", err.Error())
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, callerKey, caller), req)
}

func (s *GRPCServer) timeoutInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.requestTimeout <= 0 {
		return handler(ctx, req)
	}
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()
	return handler(ctx, req)
}

// requestLogInterceptor tags every call with a request id and logs its outcome.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	requestID := uuid.NewString()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	start := time.Now()
	resp, err := handler(ctx, req)

	args := []any{
		"request_id", requestID,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	}
	if err != nil {
		s.logger.Warn(ctx, "request failed", append(args, "error", status.Convert(err).Message())...)
	} else {
		s.logger.Info(ctx, "request handled", args...)
	}

	return resp, err
}
