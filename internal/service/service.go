// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives bound
// payloads from the handler, enforces the post rules (required fields,
// path/body id consistency), calls the repository and records the side
// effects of every write: metrics, lifecycle logs and audit events.
//
// HTTP requests reach the service already validated by
// validation.BindAndValidate. The required-field and empty-title checks here
// guard direct callers that bypass the HTTP layer.
package service
