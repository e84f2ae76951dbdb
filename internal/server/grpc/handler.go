package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/playhub-library/internal/common"
	pb "github.com/dmitrijs2005/playhub-library/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) UpdateLibraryEntry(ctx context.Context, req *pb.UpdateLibraryEntryRequest) (*pb.UpdateLibraryEntryResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id cannot be empty")
	}
	if req.GetGameId() == "" {
		return nil, status.Error(codes.InvalidArgument, "game_id cannot be empty")
	}

	entry, err := s.library.UpdateEntry(ctx, req.GetUserId(), req.GetGameId(), statusToModel(req.GetStatus()))
	if err != nil {
		if errors.Is(err, common.ErrEmptyResult) {
			return nil, status.Error(codes.Internal, "Failed to update library entry")
		}
		s.logger.Error(ctx, "UpdateLibraryEntry failed", common.UserIDLogKey, req.GetUserId(), "error", err)
		return nil, status.Error(codes.Internal, "Internal service error")
	}

	s.logger.Debug(ctx, "library entry updated",
		common.UserIDLogKey, req.GetUserId(), common.GameIDLogKey, req.GetGameId(), "status", entry.Status)
	return &pb.UpdateLibraryEntryResponse{Entry: toPBEntry(entry)}, nil
}

func (s *GRPCServer) GetUserLibrary(ctx context.Context, req *pb.GetUserLibraryRequest) (*pb.GetUserLibraryResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id cannot be empty")
	}
	if req.GetLimit() < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit cannot be negative")
	}
	if req.GetOffset() < 0 {
		return nil, status.Error(codes.InvalidArgument, "offset cannot be negative")
	}

	entries, err := s.library.GetLibrary(ctx, req.GetUserId(), statusToModel(req.GetStatus()), req.GetLimit(), req.GetOffset())
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, "Database error")
	}

	return &pb.GetUserLibraryResponse{Entries: toPBEntries(entries)}, nil
}

func (s *GRPCServer) GetLibraryStats(ctx context.Context, req *pb.GetLibraryStatsRequest) (*pb.GetLibraryStatsResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id cannot be empty")
	}

	count, err := s.library.GetStats(ctx, req.GetUserId())
	if err != nil {
		return nil, status.Error(codes.Internal, "Database error")
	}

	return &pb.GetLibraryStatsResponse{CountLibraryEntries: count}, nil
}
