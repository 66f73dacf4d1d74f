package pos

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// RegisterFunc registers gRPC services on a server.
type RegisterFunc func(*grpc.Server)

// ServerConfig configures a gRPC server.
type ServerConfig struct {
	Name string
	Port string
}

// NewServer creates a gRPC server with the health service registered and
// reporting SERVING.
func NewServer(register RegisterFunc) (*grpc.Server, *health.Server) {
	s := grpc.NewServer()
	register(s)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	return s, healthServer
}

// RunServer listens on cfg.Port and serves until ctx is cancelled.
func RunServer(ctx context.Context, cfg ServerConfig, logger *zap.Logger, register RegisterFunc) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}

	logger.Info("server started",
		zap.String("name", cfg.Name),
		zap.String("port", cfg.Port),
	)
	return Serve(ctx, lis, logger, register)
}

// Serve runs a gRPC server on lis. Cancelling ctx flips health to
// NOT_SERVING and stops the server gracefully.
func Serve(ctx context.Context, lis net.Listener, logger *zap.Logger, register RegisterFunc) error {
	s, healthServer := NewServer(register)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			logger.Info("shutting down server")
			healthServer.Shutdown()
			s.GracefulStop()
		case <-done:
		}
	}()

	if err := s.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}
