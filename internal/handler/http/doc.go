// Package http implements the REST API of the interview-prep server.
//
// It wires the chi router, the request-scoped middleware (trace id, access
// log, bearer authentication, admin gate) and the JSON handlers that
// delegate to the service layer. Service and store errors are translated to
// a status code and a localized message in one table, see errors_mapper.go.
package http
