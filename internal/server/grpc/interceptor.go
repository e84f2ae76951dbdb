package grpc

import (
	"context"
	"runtime/debug"
	"time"

	pb "github.com/dmitrijs2005/playhub-library/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// observeInterceptor logs every unary call and records it on the metrics
// collector.
func (s *GRPCServer) observeInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	code := status.Code(err)
	s.metrics.RecordRPC(info.FullMethod, code.String(), elapsed)
	s.logger.Info(ctx, "rpc handled", "method", info.FullMethod, "code", code.String(), "duration", elapsed)

	return resp, err
}

// panicMessages holds the Internal status message reported for a recovered
// panic, keyed by full method name. Read RPCs report the same message as
// their storage failures.
var panicMessages = map[string]string{
	pb.LibraryService_GetUserLibrary_FullMethodName:  "Database error",
	pb.LibraryService_GetLibraryStats_FullMethodName: "Database error",
}

func panicMessage(method string) string {
	if msg, ok := panicMessages[method]; ok {
		return msg
	}
	return "Internal service error"
}

// recoveryInterceptor turns a handler panic into an Internal status.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "panic in handler", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
			resp, err = nil, status.Error(codes.Internal, panicMessage(info.FullMethod))
		}
	}()

	return handler(ctx, req)
}
