// Package api holds the HTTP server configuration and the route and form field
// names shared by the server and its tests.
package api
