// Package api is the HTTP transport of the blog client.
//
// # Overview
//
// Every call goes through two stages:
//  1. Request stage: the credential is read from the credentials.Store and,
//     if present and well-formed, attached verbatim under the configured
//     header (KZ_AUTH by default). Absent credentials mean an anonymous
//     request, never an empty header.
//  2. Response stage: a 2xx body is decoded into the caller's value, so
//     callers only ever see the payload. A 401 evicts the credential before
//     the error is returned; every other failure is logged and returned.
//
// # Error Handling
//
// Non-2xx responses are reported as *StatusError. A 401 additionally
// matches common.ErrUnauthorized with errors.Is. Transport errors are
// wrapped with %w so the original cause stays inspectable.
//
// # Eviction
//
// When an Invalidator is bound (the session), eviction goes through it so
// the store and the in-memory session change together. Without one, the
// store is cleared directly.
package api
