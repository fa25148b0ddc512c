// Package client is the gateway to the journal backend's REST API.
//
// It exposes the narrow Client interface the services layer depends on
// (create/update/delete/list entries, liveness probe, login) and an HTTP
// implementation that attaches the bearer token, encodes JSON with
// goccy/go-json, unwraps the backend's response envelopes and maps HTTP
// failures to typed errors (RemoteError, ValidationError,
// common.ErrUnauthorized).
//
// The gateway performs no retries and never refreshes the token; callers
// decide what a failure means (the sync engine stops its pass, the read paths
// fall back to local data).
package client
