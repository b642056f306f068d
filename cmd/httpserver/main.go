package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ruteri/embedded-signing-demo/cmd/flags"
	"github.com/ruteri/embedded-signing-demo/docusign"
	"github.com/ruteri/embedded-signing-demo/httpserver"
	"github.com/ruteri/embedded-signing-demo/signing"
	"github.com/ruteri/embedded-signing-demo/storage"
	"github.com/urfave/cli/v2"
)

const defaultSessionSecret = "change-me"

var serverFlags []cli.Flag = []cli.Flag{
	&cli.StringFlag{
		Name:    "access-token",
		EnvVars: []string{"ACCESS_TOKEN"},
		Usage:   "eSignature bearer access token (expires after ~8 hours)",
	},
	&cli.StringFlag{
		Name:    "account-id",
		EnvVars: []string{"ACCOUNT_ID"},
		Usage:   "eSignature account id",
	},
	&cli.StringFlag{
		Name:    "base-path",
		EnvVars: []string{"DS_BASE_PATH"},
		Value:   docusign.DefaultBasePath,
		Usage:   "eSignature REST API base path",
	},
	&cli.DurationFlag{
		Name:  "provider-timeout",
		Value: 60 * time.Second,
		Usage: "timeout for each eSignature API request",
	},
	&cli.StringFlag{
		Name:    "session-secret",
		EnvVars: []string{"SESSION_SECRET", "FLASK_SECRET"},
		Value:   defaultSessionSecret,
		Usage:   "key used to sign session cookies",
	},
	&cli.StringFlag{
		Name:    "host",
		EnvVars: []string{"HOST"},
		Value:   "127.0.0.1",
		Usage:   "address to listen on",
	},
	&cli.StringFlag{
		Name:    "port",
		EnvVars: []string{"PORT"},
		Value:   "5000",
		Usage:   "port to listen on",
	},
	&cli.StringFlag{
		Name:    "public-url",
		EnvVars: []string{"PUBLIC_URL"},
		Usage:   "externally visible base URL used for the signing return URL (derived from requests if empty)",
	},
	&cli.StringFlag{
		Name:    "scratch-uri",
		EnvVars: []string{"SCRATCH_URI"},
		Value:   "file://./scratch",
		Usage:   "scratch storage for uploads and signed documents: file://<dir> or s3://<bucket>/<prefix>?region=<region>, comma-separated to mirror",
	},
	&cli.Int64Flag{
		Name:  "max-upload-mb",
		Value: 25,
		Usage: "maximum upload size in megabytes",
	},
}

func main() {
	if err := flags.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	app := &cli.App{
		Name:  "httpserver",
		Usage: "Serve the embedded signing web front-end",
		Flags: append(append(serverFlags, flags.CommonFlags...), flags.ServerFlags...),
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)

			// Fails before any network use when the token or account is missing
			provider, err := docusign.New(&docusign.Config{
				BasePath:    cCtx.String("base-path"),
				AccessToken: cCtx.String("access-token"),
				AccountID:   cCtx.String("account-id"),
				Timeout:     cCtx.Duration("provider-timeout"),
			})
			if err != nil {
				logger.Error("Failed to configure eSignature client", "err", err)
				return err
			}

			scratch, err := storage.NewStorageBackendFactory(logger).StorageBackendFromURIs(cCtx.String("scratch-uri"))
			if err != nil {
				logger.Error("Failed to create scratch storage", "err", err)
				return err
			}
			logger.Info("Using scratch storage", "backend", scratch.Name(), "location", scratch.LocationURI())

			sessionSecret := cCtx.String("session-secret")
			if sessionSecret == defaultSessionSecret {
				logger.Warn("Using the default session secret, set SESSION_SECRET")
			}
			publicURL := cCtx.String("public-url")
			if publicURL == "" {
				logger.Warn("No public URL set, the signing return URL is taken from request Host and X-Forwarded-Proto headers; set PUBLIC_URL behind a proxy")
			}
			sessions := httpserver.NewSessionStore(sessionSecret, strings.HasPrefix(publicURL, "https://"))

			svc := signing.NewService(provider, scratch, logger)
			handler := httpserver.NewHandler(svc, sessions, publicURL, cCtx.Int64("max-upload-mb")<<20, logger)

			listenAddr := net.JoinHostPort(cCtx.String("host"), cCtx.String("port"))
			cfg := flags.ConfigureServer(cCtx, logger, listenAddr)

			server, err := httpserver.New(cfg, handler)
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			server.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop", "url", "http://"+listenAddr)
			<-exit
			logger.Info("Shutdown signal received")

			server.Shutdown()
			logger.Info("Server shutdown complete")

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
