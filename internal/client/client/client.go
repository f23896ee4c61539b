package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	pb "github.com/dmitrijs2005/zkkeeper/internal/proto"
)

// Session is the token pair held after a successful Login or Refresh.
type Session struct {
	AccountID        string
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// Client is the transport-level view of the account service. Login stores the
// returned session; Logout and LogoutAll drop it.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	PreRegister(ctx context.Context) (string, error)
	Register(ctx context.Context, req *pb.RegisterRequest) error
	PreLogin(ctx context.Context, accountID string) (*pb.PreLoginResponse, error)
	Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error)
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) error

	GetWraps(ctx context.Context, req *pb.GetWrapsRequest) (*cryptox.Envelope, error)
	GetRecoveryWraps(ctx context.Context, req *pb.GetRecoveryWrapsRequest) (*cryptox.Envelope, error)
	ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) error
	Recover(ctx context.Context, req *pb.RecoverRequest) error

	Session() (Session, bool)
}
