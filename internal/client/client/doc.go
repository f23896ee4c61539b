// Package client contains the client-side transport for zkkeeper.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the account
//     service: registration, login, refresh, logout, wraps retrieval and
//     credential changes.
//  2. A concrete gRPC implementation (see GRPCClient) that holds the session,
//     injects the access token via an interceptor, refreshes an expired token
//     once per expiry no matter how many calls observe it, and maps gRPC
//     status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the CLI,
//     opening an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Callers match sentinel errors with errors.Is: ErrUnavailable,
// ErrUnauthorized, ErrInvalidInput, ErrConflict, ErrNotLoggedIn.
//
// GRPCClient is safe for concurrent use.
package client
