// Package main (cmd/httpserver) runs the embedded signing web front-end.
//
// It serves an upload form, sends the uploaded PDF to the eSignature API as a
// single-signer envelope, redirects the browser into the embedded signing
// ceremony and offers the combined signed PDF for download afterwards.
//
// Configuration comes from flags or environment variables; a .env file in the
// working directory is loaded first and never overrides variables that are
// already set. ACCESS_TOKEN and ACCOUNT_ID are required; the server refuses
// to start without them. Tokens are not refreshed: when the provider starts
// answering 401, mint a new one (see cmd/jwt-token) and restart.
//
// Example usage:
//
//	ACCESS_TOKEN=eyJ0eXAi... ACCOUNT_ID=4f0e0b88-... httpserver --log-debug
//
// Then open http://127.0.0.1:5000.
package main
