package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ruteri/embedded-signing-demo/cmd/flags"
	"github.com/ruteri/embedded-signing-demo/oauth"
	"github.com/urfave/cli/v2"
)

var tokenFlags []cli.Flag = []cli.Flag{
	&cli.StringFlag{
		Name:     "integration-key",
		EnvVars:  []string{"DS_INTEGRATION_KEY"},
		Required: true,
		Usage:    "integration key (client id) issuing the assertion",
	},
	&cli.StringFlag{
		Name:     "user-id",
		EnvVars:  []string{"DS_USER_ID"},
		Required: true,
		Usage:    "GUID of the user to impersonate",
	},
	&cli.StringFlag{
		Name:    "account-id",
		EnvVars: []string{"ACCOUNT_ID"},
		Usage:   "account the token will be used with; only echoed for the .env hint",
	},
	&cli.StringFlag{
		Name:    "private-key-file",
		EnvVars: []string{"DS_PRIVATE_KEY_FILE"},
		Value:   "private.key",
		Usage:   "PEM file with the integration's RSA private key",
	},
	&cli.StringFlag{
		Name:    "auth-server",
		EnvVars: []string{"DS_AUTH_SERVER"},
		Value:   oauth.DefaultAuthServer,
		Usage:   "authorization host (account-d.docusign.com for the sandbox)",
	},
	&cli.DurationFlag{
		Name:  "timeout",
		Value: 30 * time.Second,
		Usage: "timeout for the token request",
	},
}

func main() {
	if err := flags.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	app := &cli.App{
		Name:  "jwt-token",
		Usage: "Mint an eSignature access token with a JWT bearer assertion",
		Flags: append(tokenFlags, flags.CommonFlags...),
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)
			authServer := cCtx.String("auth-server")

			key, err := oauth.LoadPrivateKey(cCtx.String("private-key-file"))
			if err != nil {
				logger.Error("Failed to load private key", "err", err)
				return err
			}

			assertion, err := oauth.BuildAssertion(oauth.AssertionParams{
				IntegrationKey: cCtx.String("integration-key"),
				UserID:         cCtx.String("user-id"),
				AuthServer:     authServer,
			}, key, time.Now())
			if err != nil {
				logger.Error("Failed to build assertion", "err", err)
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), cCtx.Duration("timeout"))
			defer cancel()

			logger.Debug("Requesting access token", "authServer", authServer)
			token, err := oauth.ExchangeAssertion(ctx, http.DefaultClient, oauth.TokenEndpoint(authServer), assertion)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error getting token:")
				return err
			}

			fmt.Print("\nYour ACCESS TOKEN is:\n\n")
			fmt.Println(token.AccessToken)
			fmt.Println("\nCopy this into your .env file as ACCESS_TOKEN.")
			if accountID := cCtx.String("account-id"); accountID != "" {
				fmt.Printf("Use it with ACCOUNT_ID=%s.\n", accountID)
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
