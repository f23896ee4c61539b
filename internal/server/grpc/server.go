package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	"github.com/dmitrijs2005/zkkeeper/internal/logging"
	pb "github.com/dmitrijs2005/zkkeeper/internal/proto"
	"github.com/dmitrijs2005/zkkeeper/internal/server/auth"
	"github.com/dmitrijs2005/zkkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AuthService is the account service the handlers delegate to.
type AuthService interface {
	PreRegister(ctx context.Context) string
	Register(ctx context.Context, req *services.RegisterRequest) (string, error)
	PreLogin(ctx context.Context, accountID string) (*services.PreLoginResult, error)
	Login(ctx context.Context, accountID string, loginVerifier []byte) (*services.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutAll(ctx context.Context, accountID string) error
	GetWraps(ctx context.Context, accountID string, adminVerifier []byte) (*cryptox.Envelope, error)
	GetRecoveryWraps(ctx context.Context, accountID string, recoveryVerifier []byte) (*cryptox.Envelope, error)
	ChangePassword(ctx context.Context, req *services.ChangePasswordRequest) error
	Recover(ctx context.Context, req *services.RecoverRequest) error
}

// TokenParser validates access tokens.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	auth    AuthService
	tokens  TokenParser
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, svc AuthService, tokens TokenParser) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    svc,
		tokens:  tokens,
	}
}

// newServer builds a grpc.Server with the interceptors, the account service
// and the standard health service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterAuthServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.AuthService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
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
