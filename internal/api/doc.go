// Package api contains the HTTP handlers, request/response models, and
// error mapping for the public REST surface. Handlers stay thin: they
// decode and validate input, call a service, and translate the result
// (or the error) into a JSON response.
package api
