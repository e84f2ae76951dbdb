package grpc

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dmitrijs2005/playhub-library/internal/logging"
	"github.com/dmitrijs2005/playhub-library/internal/metrics"
	pb "github.com/dmitrijs2005/playhub-library/internal/proto"
	"github.com/dmitrijs2005/playhub-library/internal/server/models"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type librarySvc interface {
	UpdateEntry(ctx context.Context, userID, gameID string, status models.GameStatus) (*models.LibraryEntry, error)
	GetLibrary(ctx context.Context, userID string, status models.GameStatus, limit, offset int32) ([]*models.LibraryEntry, error)
	GetStats(ctx context.Context, userID string) (int32, error)
}

type GRPCServer struct {
	pb.UnimplementedLibraryServiceServer
	address         string
	shutdownTimeout time.Duration
	library         librarySvc
	logger          logging.Logger
	metrics         metrics.MetricsCollector
}

func NewGRPCServer(a string, shutdownTimeout time.Duration, l logging.Logger, ls librarySvc, m metrics.MetricsCollector) *GRPCServer {
	return &GRPCServer{
		address:         a,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "grpc_server"),
		library:         ls,
		metrics:         m,
	}
}

// newServer builds the grpc.Server with interceptors, tracing, health and the
// library service registered.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.observeInterceptor, s.recoveryInterceptor),
	)

	pb.RegisterLibraryServiceServer(srv, s)

	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.LibraryService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return srv, hs
}

// Run listens on the configured address and serves until ctx is cancelled.
// In-flight calls get shutdownTimeout to finish before the server is stopped
// hard; zero waits indefinitely.
func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv, hs := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		s.stop(srv)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	<-stopped
	return nil
}

func (s *GRPCServer) stop(srv *grpc.Server) {
	if s.shutdownTimeout <= 0 {
		srv.GracefulStop()
		return
	}

	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		s.logger.Warn(context.Background(), "graceful stop timed out, forcing", "timeout", s.shutdownTimeout)
		srv.Stop()
	}
}
