// Package main (cmd/jwt-token) is an operator utility that mints an
// eSignature access token through the OAuth JWT bearer grant.
//
// It signs a one-hour assertion with the integration's RSA private key,
// exchanges it at the authorization server and prints the resulting access
// token for copying into .env as ACCESS_TOKEN. On failure the token
// endpoint's response body is printed as-is. There is no retry.
//
// Example usage:
//
//	jwt-token --integration-key 33cafb67-... --user-id a28302dc-... --private-key-file private.key
package main
