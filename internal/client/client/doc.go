// Package client contains the gRPC client for the library service.
//
// GRPCClient owns a connection, applies a per-call timeout and maps gRPC
// status codes to sentinel errors (ErrUnavailable, ErrInvalidArgument) that
// callers can match with errors.Is. ParseStatus converts user input such as
// "playing" into the wire enum.
package client
