package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"priceoracle/internal/oracle"
	"priceoracle/internal/oracleclient"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var flagURL *cli.StringFlag = &cli.StringFlag{
	Name:  "url",
	Value: "http://127.0.0.1:8080",
	Usage: "Oracle base URL",
}
var flagToken *cli.StringFlag = &cli.StringFlag{
	Name:     "token",
	Usage:    "Token id as known by the price source, e.g. solana",
	Required: true,
}
var flagClientKey *cli.StringFlag = &cli.StringFlag{
	Name:    "client-key",
	Usage:   "Trusted client key sent as trustedClientKey",
	EnvVars: []string{"ORACLE_CLIENT_KEY"},
}
var flagKey *cli.StringFlag = &cli.StringFlag{
	Name:    "key",
	Usage:   "64-byte oracle key (hex, base64 or JSON byte array)",
	EnvVars: []string{"ORACLE_PRIVATE_KEY"},
}
var flagTimeout *cli.DurationFlag = &cli.DurationFlag{
	Name:  "timeout",
	Value: 15 * time.Second,
}

func main() {
	app := &cli.App{
		Name:  "oraclectl",
		Usage: "query and provision the price oracle",
		Commands: []*cli.Command{
			{
				Name:  "price",
				Usage: "request a signed price",
				Flags: []cli.Flag{flagURL, flagToken, flagClientKey, flagTimeout},
				Action: func(cCtx *cli.Context) error {
					ctx, cancel := context.WithTimeout(cCtx.Context, cCtx.Duration(flagTimeout.Name))
					defer cancel()

					client := oracleclient.NewClient(&http.Client{}, cCtx.String(flagURL.Name), cCtx.String(flagClientKey.Name))
					signed, err := client.GetSignedPrice(ctx, cCtx.String(flagToken.Name))
					if err != nil {
						return err
					}
					return printJSON(cCtx.App.Writer, signed)
				},
			},
			{
				Name:  "pubkey",
				Usage: "print the public key derived from an oracle key, or fetch it from a running oracle with --url",
				Flags: []cli.Flag{flagKey, flagURL, flagTimeout},
				Action: func(cCtx *cli.Context) error {
					if raw := cCtx.String(flagKey.Name); raw != "" {
						return printPublicKey(cCtx.App.Writer, raw)
					}

					ctx, cancel := context.WithTimeout(cCtx.Context, cCtx.Duration(flagTimeout.Name))
					defer cancel()

					info, err := oracleclient.NewClient(&http.Client{}, cCtx.String(flagURL.Name), "").GetPublicKey(ctx)
					if err != nil {
						return err
					}
					return printJSON(cCtx.App.Writer, info)
				},
			},
			{
				Name:  "keygen",
				Usage: "generate a 64-byte oracle key (seed || public key) as hex",
				Action: func(cCtx *cli.Context) error {
					return generateKey(cCtx.App.Writer, rand.Reader)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Error("oraclectl failed")
		os.Exit(1)
	}
}

func printPublicKey(w io.Writer, raw string) error {
	key, err := oracle.ParseKey(raw)
	if err != nil {
		return err
	}
	if !key.Consistent() {
		logrus.Warn("trailing 32 bytes don't match the public key derived from the seed")
	}
	return printJSON(w, oracle.NewPublicKeyInfo(key.PublicKey()))
}

func generateKey(w io.Writer, random io.Reader) error {
	_, priv, err := ed25519.GenerateKey(random)
	if err != nil {
		return fmt.Errorf("failed to generate ed25519 key: %w", err)
	}
	_, err = fmt.Fprintln(w, hex.EncodeToString(priv))
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
