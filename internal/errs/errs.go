// Package errs defines the error envelope returned by the API.
//
// Every failure that reaches a client, whether a missing body field, a
// path/body id mismatch, an unknown post or an unknown route, is rendered
// as an HTTPError so clients see one consistent JSON shape.
package errs
