// Package common contains shared constants and sentinel errors used across
// zkkeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// CurrentSchemaVersion is the crypto-schema version produced by this client.
const CurrentSchemaVersion = 1
