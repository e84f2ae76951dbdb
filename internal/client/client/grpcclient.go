package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	pb "github.com/dmitrijs2005/playhub-library/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.LibraryServiceClient
}

func NewLibraryClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewLibraryServiceClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) UpdateEntry(ctx context.Context, userID, gameID string, st pb.GameStatus) (*pb.LibraryEntry, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.UpdateLibraryEntry(ctx, &pb.UpdateLibraryEntryRequest{UserId: userID, GameId: gameID, Status: st})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetEntry(), nil
}

func (s *GRPCClient) GetLibrary(ctx context.Context, userID string, st pb.GameStatus, limit, offset int32) ([]*pb.LibraryEntry, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetUserLibrary(ctx, &pb.GetUserLibraryRequest{UserId: userID, Status: st, Limit: limit, Offset: offset})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetEntries(), nil
}

func (s *GRPCClient) GetStats(ctx context.Context, userID string) (int32, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetLibraryStats(ctx, &pb.GetLibraryStatsRequest{UserId: userID})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.GetCountLibraryEntries(), nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// ParseStatus converts a status name such as "playing", "PLAYING" or
// "GAME_STATUS_PLAYING" into the wire enum. An empty name is unspecified.
func ParseStatus(name string) (pb.GameStatus, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return pb.GameStatus_GAME_STATUS_UNSPECIFIED, nil
	}
	if !strings.HasPrefix(name, "GAME_STATUS_") {
		name = "GAME_STATUS_" + name
	}
	v, ok := pb.GameStatus_value[name]
	if !ok {
		return pb.GameStatus_GAME_STATUS_UNSPECIFIED, fmt.Errorf("%w: %s", ErrUnknownStatus, name)
	}
	return pb.GameStatus(v), nil
}
