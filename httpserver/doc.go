/*
Package httpserver implements the web front-end of the embedded signing demo.

A user uploads a PDF together with the signer's name and email and the
position of the signature field. The server sends it to the e-signature
provider as a new envelope and redirects the browser to the provider's
embedded signing ceremony. When the ceremony ends the provider redirects back
to /done, and the signed document can then be downloaded.

API Endpoints:

  • GET /           - Upload form
  • POST /send      - Send a PDF for signing (multipart: recipient_name, recipient_email, x, y, page, file)
  • GET /done       - Return page after signing (?envelope_id=...&event=...)
  • POST /download  - Download the combined signed PDF (form: envelope_id)
  • GET /livez      - Liveness check
  • GET /readyz     - Readiness check
  • GET /drain      - Gracefully mark server as not ready
  • GET /undrain    - Mark server as ready

Input problems (no file, wrong extension, no PDF header, missing envelope id)
are queued as flash messages in a signed session cookie and redirect to the
form. Provider errors are logged and returned as a 502 page; nothing is
retried.

Example usage:

	svc := signing.NewService(provider, scratch, logger)
	handler := httpserver.NewHandler(svc, httpserver.NewSessionStore(secret, false), "", 0, logger)

	server, err := httpserver.New(&api.HTTPServerConfig{
		ListenAddr:               "127.0.0.1:5000",
		Log:                      logger,
		DrainDuration:            45 * time.Second,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             90 * time.Second,
	}, handler)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	server.RunInBackground()
	defer server.Shutdown()
*/
package httpserver
