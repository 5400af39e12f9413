// Package httpapi exposes the circulation use cases over HTTP.
//
// The caller identity is set by the upstream gateway in the X-User-ID and X-User-Role
// headers and trusted as is. Bodies are JSON, errors are {"message": "..."} with the
// status derived from the circulation error taxonomy.
package httpapi
