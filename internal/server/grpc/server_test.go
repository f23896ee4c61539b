package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/api"
	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	"github.com/dmitrijs2005/zkkeeper/internal/logging"
	pb "github.com/dmitrijs2005/zkkeeper/internal/proto"
	"github.com/dmitrijs2005/zkkeeper/internal/server/auth"
	"github.com/dmitrijs2005/zkkeeper/internal/server/config"
	"github.com/dmitrijs2005/zkkeeper/internal/server/refresh"
	"github.com/dmitrijs2005/zkkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/zkkeeper/internal/server/services"
	"github.com/dmitrijs2005/zkkeeper/internal/server/verifier"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", nopLogger{}, &fakeAuth{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nopLogger{}, &fakeAuth{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// startBufconn serves a fully wired account service over an in-memory
// listener and returns a connected client.
func startBufconn(t *testing.T) (pb.AuthServiceClient, *grpc.ClientConn) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	engine, err := verifier.NewEngine(cfg.Pepper, cfg.FakeSaltSecret, 10)
	require.NoError(t, err)

	rm := repomanager.NewMemoryRepositoryManager()
	issuer := auth.NewIssuer([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration, nil)
	svc := services.NewAuthService(services.Dependencies{
		Accounts: rm.Accounts(nil),
		Tokens:   refresh.NewStore(rm.RefreshTokens(nil), cfg.RefreshTokenValidityDuration),
		Issuer:   issuer,
		Verifier: engine,
		Logger:   logging.Discard(),
	}, cfg)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- NewGRPCServer("bufconn", nopLogger{}, svc, issuer).Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-done
	})

	return pb.NewAuthServiceClient(conn), conn
}

func TestEndToEnd_RegisterLoginLogoutAll(t *testing.T) {
	c, conn := startBufconn(t)
	ctx := context.Background()

	ping, err := c.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	require.Equal(t, "OK", ping.Status)

	hc, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: pb.AuthService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, hc.Status)

	pre, err := c.PreRegister(ctx, &pb.PreRegisterRequest{})
	require.NoError(t, err)
	id := pre.GetAccountId()

	base := make([]byte, cryptox.KeySize)
	base[0] = 42
	keys, err := cryptox.DerivePasswordKeys(base)
	require.NoError(t, err)
	secret := cryptox.NewRecoverySecret()
	rk, err := cryptox.DeriveRecoveryKeys(secret)
	require.NoError(t, err)

	mk := cryptox.NewMasterKey()
	kek := keys.KEK
	wrapP, err := kek.Wrap(mk, cryptox.MasterKeyAAD(id, cryptox.SlotPassword))
	require.NoError(t, err)
	wrapR, err := rk.KEK.Wrap(mk, cryptox.MasterKeyAAD(id, cryptox.SlotRecovery))
	require.NoError(t, err)

	salt := cryptox.NewSalt()
	_, err = c.Register(ctx, &pb.RegisterRequest{
		AccountId:         id,
		LoginVerifier:     keys.LoginVerifier,
		AdminVerifier:     keys.AdminVerifier,
		RecoveryVerifier:  rk.Verifier,
		KdfSalt:           salt,
		KdfMode:           string(cryptox.DefaultKDFMode),
		WrappedMkPassword: api.EnvelopeToPB(wrapP),
		WrappedMkRecovery: api.EnvelopeToPB(wrapR),
		SchemaVersion:     common.CurrentSchemaVersion,
	})
	require.NoError(t, err)

	_, err = c.Register(ctx, &pb.RegisterRequest{AccountId: id, SchemaVersion: 1})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	pl, err := c.PreLogin(ctx, &pb.PreLoginRequest{AccountId: id})
	require.NoError(t, err)
	require.Equal(t, salt, pl.GetKdfSalt())

	_, err = c.Login(ctx, &pb.LoginRequest{AccountId: id, LoginVerifier: keys.AdminVerifier})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	login, err := c.Login(ctx, &pb.LoginRequest{AccountId: id, LoginVerifier: keys.LoginVerifier})
	require.NoError(t, err)
	got, err := kek.Unwrap(api.EnvelopeFromPB(login.GetWrappedMkPassword()), cryptox.MasterKeyAAD(id, cryptox.SlotPassword))
	require.NoError(t, err)
	require.Equal(t, mk, got)
	require.False(t, api.Time(login.GetRefreshExpiresAt()).IsZero())

	ref, err := c.Refresh(ctx, &pb.RefreshRequest{RefreshToken: login.GetRefreshToken()})
	require.NoError(t, err)

	_, err = c.LogoutAll(ctx, &pb.LogoutAllRequest{AccountId: id})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	authed := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, ref.AccessToken)
	_, err = c.LogoutAll(authed, &pb.LogoutAllRequest{AccountId: id})
	require.NoError(t, err)

	_, err = c.Refresh(ctx, &pb.RefreshRequest{RefreshToken: ref.GetRefreshToken()})
	require.Equal(t, codes.Unauthenticated, status.Code(err))
	require.Equal(t, "invalid refresh token", status.Convert(err).Message())
}
