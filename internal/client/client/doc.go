// Package client contains the transport to the clients backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): List, Get,
//     Create, Update and Delete of client records.
//  2. A REST implementation (see HTTPClient) speaking JSON to
//     {base}, {base}/{id} with GET, POST, PATCH and DELETE. Every request
//     carries an X-Request-ID and is bounded by a per-request timeout.
//
// # Error Handling
//
// Transport failures map to ErrUnavailable, undecodable success bodies to
// ErrMalformedResponse. Non-2xx answers become *RejectionError holding the
// backend's {message}; a 404 also matches ErrNotFound with errors.Is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
