package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/api"
	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	pb "github.com/dmitrijs2005/zkkeeper/internal/proto"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const DefaultCallTimeout = 15 * time.Second

type GRPCClient struct {
	endpointURL string
	callTimeout time.Duration
	dialOpts    []grpc.DialOption

	conn   *grpc.ClientConn
	client pb.AuthServiceClient

	mu      sync.Mutex
	session Session

	refreshGroup singleflight.Group
}

type Option func(*GRPCClient)

// WithCallTimeout bounds every RPC. Zero disables the bound.
func WithCallTimeout(d time.Duration) Option {
	return func(c *GRPCClient) { c.callTimeout = d }
}

// WithDialOptions appends extra dial options (tests use it for bufconn).
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOpts = append(c.dialOpts, opts...) }
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	token := s.accessToken()
	if token != "" {
		ctx = withAccessToken(ctx, token)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil || method == pb.AuthService_Refresh_FullMethodName || !isTokenExpired(err) {
		return err
	}

	if rerr := s.refresh(ctx, token); rerr != nil {
		if errors.Is(rerr, ErrNotLoggedIn) {
			return err
		}
		return rerr
	}

	// tokens refreshed, retry once with the new access token
	ctx = withAccessToken(ctx, s.accessToken())
	return invoker(ctx, method, req, reply, cc, opts...)
}

// refresh rotates the session. Callers that observed the same stale access
// token share a single Refresh RPC; a caller whose token is already outdated
// returns immediately.
func (s *GRPCClient) refresh(ctx context.Context, stale string) error {
	_, err, _ := s.refreshGroup.Do("refresh", func() (any, error) {
		cur, _ := s.Session()
		if cur.AccessToken != stale {
			return nil, nil
		}
		if cur.RefreshToken == "" {
			return nil, ErrNotLoggedIn
		}

		// Detached from ctx: abandoning the call midway would lose the
		// rotated token and trip reuse detection on the next attempt.
		rctx, cancel := s.withTimeout(context.WithoutCancel(ctx))
		defer cancel()

		resp, err := s.client.Refresh(rctx, &pb.RefreshRequest{RefreshToken: cur.RefreshToken})
		if err != nil {
			if status.Code(err) == codes.Unauthenticated {
				s.clearSession()
			}
			return nil, err
		}

		s.mu.Lock()
		s.session.AccessToken = resp.GetAccessToken()
		s.session.RefreshToken = resp.GetRefreshToken()
		s.session.RefreshExpiresAt = api.Time(resp.GetRefreshExpiresAt())
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

func NewGRPCClient(endpointURL string, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, callTimeout: DefaultCallTimeout}
	for _, o := range opts {
		o(c)
	}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.callTimeout)
}

// Session returns a copy of the current session and whether one is held.
func (s *GRPCClient) Session() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.session.RefreshToken != ""
}

func (s *GRPCClient) accessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.AccessToken
}

func (s *GRPCClient) clearSession() {
	s.mu.Lock()
	s.session = Session{}
	s.mu.Unlock()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) PreRegister(ctx context.Context) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.PreRegister(ctx, &pb.PreRegisterRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetAccountId(), nil
}

func (s *GRPCClient) Register(ctx context.Context, req *pb.RegisterRequest) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.Register(ctx, req)
	return s.mapError(err)
}

func (s *GRPCClient) PreLogin(ctx context.Context, accountID string) (*pb.PreLoginResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.PreLogin(ctx, &pb.PreLoginRequest{AccountId: accountID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	s.mu.Lock()
	s.session = Session{
		AccountID:        req.GetAccountId(),
		AccessToken:      resp.GetAccessToken(),
		RefreshToken:     resp.GetRefreshToken(),
		RefreshExpiresAt: api.Time(resp.GetRefreshExpiresAt()),
	}
	s.mu.Unlock()

	return resp, nil
}

// Refresh rotates the session explicitly.
func (s *GRPCClient) Refresh(ctx context.Context) error {
	return s.mapError(s.refresh(ctx, s.accessToken()))
}

// Logout revokes the held refresh token. The local session is dropped even
// when the server cannot be reached.
func (s *GRPCClient) Logout(ctx context.Context) error {
	sess, ok := s.Session()
	if !ok {
		return ErrNotLoggedIn
	}
	s.clearSession()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: sess.RefreshToken})
	return s.mapError(err)
}

func (s *GRPCClient) LogoutAll(ctx context.Context) error {
	sess, ok := s.Session()
	if !ok {
		return ErrNotLoggedIn
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.LogoutAll(ctx, &pb.LogoutAllRequest{AccountId: sess.AccountID}); err != nil {
		return s.mapError(err)
	}
	s.clearSession()
	return nil
}

func (s *GRPCClient) GetWraps(ctx context.Context, req *pb.GetWrapsRequest) (*cryptox.Envelope, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetWraps(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.EnvelopeFromPB(resp.GetWrappedMkPassword()), nil
}

func (s *GRPCClient) GetRecoveryWraps(ctx context.Context, req *pb.GetRecoveryWrapsRequest) (*cryptox.Envelope, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetRecoveryWraps(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.EnvelopeFromPB(resp.GetWrappedMkRecovery()), nil
}

// ChangePassword replaces the password credentials. The server revokes every
// session of the account, so the local one is dropped too.
func (s *GRPCClient) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.ChangePassword(ctx, req); err != nil {
		return s.mapError(err)
	}
	s.clearSession()
	return nil
}

func (s *GRPCClient) Recover(ctx context.Context, req *pb.RecoverRequest) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.Recover(ctx, req); err != nil {
		return s.mapError(err)
	}
	s.clearSession()
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotLoggedIn) {
		return err
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.AlreadyExists:
		return ErrConflict
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
