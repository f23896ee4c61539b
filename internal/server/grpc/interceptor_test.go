package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	pb "github.com/dmitrijs2005/zkkeeper/internal/proto"
	"github.com/dmitrijs2005/zkkeeper/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// helper to build server
func newTestServer(issuer *auth.Issuer) *GRPCServer {
	return NewGRPCServer("", nopLogger{}, &fakeAuth{}, issuer)
}

func incoming(token string) context.Context {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_UnprotectedAllowsWithoutToken(t *testing.T) {
	s := newTestServer(auth.NewIssuer([]byte("secret"), time.Minute, nil))

	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_Login_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req any) (any, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer(auth.NewIssuer([]byte("secret"), time.Minute, nil))
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_LogoutAll_FullMethodName}

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer(auth.NewIssuer([]byte("secret"), time.Minute, nil))
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_LogoutAll_FullMethodName}

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called for an invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(incoming("not-a-valid-jwt"), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != common.ErrInvalidToken.Error() {
		t.Fatalf("unexpected message %q", status.Convert(err).Message())
	}
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	old := auth.NewIssuer([]byte("secret"), time.Minute, func() time.Time { return past })
	tok, err := old.Issue("acc")
	if err != nil {
		t.Fatal(err)
	}

	s := newTestServer(auth.NewIssuer([]byte("secret"), time.Minute, nil))
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_LogoutAll_FullMethodName}

	_, err = s.accessTokenInterceptor(incoming(tok.Token), nil, info, func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called for an expired token")
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != common.ErrTokenExpired.Error() {
		t.Fatalf("expected token expired, got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_ValidTokenStoresSubject(t *testing.T) {
	issuer := auth.NewIssuer([]byte("secret"), time.Minute, nil)
	tok, err := issuer.Issue("acc-1")
	if err != nil {
		t.Fatal(err)
	}

	s := newTestServer(issuer)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_LogoutAll_FullMethodName}

	var got string
	_, err = s.accessTokenInterceptor(incoming(tok.Token), nil, info, func(ctx context.Context, req any) (any, error) {
		got, _ = AccountIDFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "acc-1" {
		t.Fatalf("subject = %q, want acc-1", got)
	}
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := newTestServer(nil)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_Ping_FullMethodName}
	want := status.Error(codes.Internal, "x")

	_, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, want
	})
	if err != want {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
