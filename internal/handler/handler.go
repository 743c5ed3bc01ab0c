// Package handler is the HTTP boundary of the service.
//
// It binds and validates requests through the validation package, calls
// the service layer and translates domain errors into errs.HTTPError
// responses.
package handler
