package grpc

import (
	"context"

	"github.com/dmitrijs2005/zkkeeper/internal/api"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	pb "github.com/dmitrijs2005/zkkeeper/internal/proto"
	"github.com/dmitrijs2005/zkkeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) PreRegister(ctx context.Context, req *pb.PreRegisterRequest) (*pb.PreRegisterResponse, error) {
	return &pb.PreRegisterResponse{AccountId: s.auth.PreRegister(ctx)}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	id, err := s.auth.Register(ctx, &services.RegisterRequest{
		AccountID:         req.GetAccountId(),
		LoginVerifier:     req.GetLoginVerifier(),
		AdminVerifier:     req.GetAdminVerifier(),
		RecoveryVerifier:  req.GetRecoveryVerifier(),
		KDFSalt:           req.GetKdfSalt(),
		KDFMode:           cryptox.KDFMode(req.GetKdfMode()),
		WrappedMKPassword: api.EnvelopeFromPB(req.GetWrappedMkPassword()),
		WrappedMKRecovery: api.EnvelopeFromPB(req.GetWrappedMkRecovery()),
		SchemaVersion:     int(req.GetSchemaVersion()),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.RegisterResponse{AccountId: id}, nil
}

func (s *GRPCServer) PreLogin(ctx context.Context, req *pb.PreLoginRequest) (*pb.PreLoginResponse, error) {

	res, err := s.auth.PreLogin(ctx, req.GetAccountId())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.PreLoginResponse{
		KdfSalt:       res.KDFSalt,
		KdfMode:       string(res.KDFMode),
		SchemaVersion: int32(res.SchemaVersion),
	}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	res, err := s.auth.Login(ctx, req.GetAccountId(), req.GetLoginVerifier())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.LoginResponse{
		AccessToken:       res.AccessToken,
		RefreshToken:      res.RefreshToken,
		RefreshExpiresAt:  api.Timestamp(res.RefreshExpiresAt),
		WrappedMkPassword: api.EnvelopeToPB(res.WrappedMKPassword),
		WrappedMkRecovery: api.EnvelopeToPB(res.WrappedMKRecovery),
	}, nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.RefreshResponse, error) {

	pair, err := s.auth.Refresh(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.RefreshResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		RefreshExpiresAt: api.Timestamp(pair.RefreshExpiresAt),
	}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if err := s.auth.Logout(ctx, req.GetRefreshToken()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.LogoutResponse{}, nil
}

// LogoutAll may only target the account the access token was issued to. An
// empty account id means that account.
func (s *GRPCServer) LogoutAll(ctx context.Context, req *pb.LogoutAllRequest) (*pb.LogoutAllResponse, error) {

	subject, ok := AccountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	accountID := req.GetAccountId()
	if accountID == "" {
		accountID = subject
	}
	if accountID != subject {
		return nil, status.Error(codes.PermissionDenied, "permission denied")
	}

	if err := s.auth.LogoutAll(ctx, accountID); err != nil {
		return nil, toStatus(err)
	}
	return &pb.LogoutAllResponse{}, nil
}

func (s *GRPCServer) GetWraps(ctx context.Context, req *pb.GetWrapsRequest) (*pb.GetWrapsResponse, error) {
	env, err := s.auth.GetWraps(ctx, req.GetAccountId(), req.GetAdminVerifier())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetWrapsResponse{WrappedMkPassword: api.EnvelopeToPB(env)}, nil
}

func (s *GRPCServer) GetRecoveryWraps(ctx context.Context, req *pb.GetRecoveryWrapsRequest) (*pb.GetRecoveryWrapsResponse, error) {
	env, err := s.auth.GetRecoveryWraps(ctx, req.GetAccountId(), req.GetRecoveryVerifier())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetRecoveryWrapsResponse{WrappedMkRecovery: api.EnvelopeToPB(env)}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {

	err := s.auth.ChangePassword(ctx, &services.ChangePasswordRequest{
		AccountID:            req.GetAccountId(),
		AdminVerifier:        req.GetAdminVerifier(),
		NewLoginVerifier:     req.GetNewLoginVerifier(),
		NewAdminVerifier:     req.GetNewAdminVerifier(),
		NewKDFSalt:           req.GetNewKdfSalt(),
		NewKDFMode:           cryptox.KDFMode(req.GetNewKdfMode()),
		NewWrappedMKPassword: api.EnvelopeFromPB(req.GetNewWrappedMkPassword()),
		NewWrappedMKRecovery: api.EnvelopeFromPB(req.GetNewWrappedMkRecovery()),
		SchemaVersion:        int(req.GetSchemaVersion()),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.ChangePasswordResponse{}, nil
}

func (s *GRPCServer) Recover(ctx context.Context, req *pb.RecoverRequest) (*pb.RecoverResponse, error) {

	err := s.auth.Recover(ctx, &services.RecoverRequest{
		AccountID:            req.GetAccountId(),
		RecoveryVerifier:     req.GetRecoveryVerifier(),
		NewLoginVerifier:     req.GetNewLoginVerifier(),
		NewAdminVerifier:     req.GetNewAdminVerifier(),
		NewRecoveryVerifier:  req.GetNewRecoveryVerifier(),
		NewKDFSalt:           req.GetNewKdfSalt(),
		NewKDFMode:           cryptox.KDFMode(req.GetNewKdfMode()),
		NewWrappedMKPassword: api.EnvelopeFromPB(req.GetNewWrappedMkPassword()),
		NewWrappedMKRecovery: api.EnvelopeFromPB(req.GetNewWrappedMkRecovery()),
		SchemaVersion:        int(req.GetSchemaVersion()),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.RecoverResponse{}, nil
}
