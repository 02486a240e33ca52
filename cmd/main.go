package main

import (
	"os"

	"priceoracle/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Price Oracle API
// @version 1.0
// @description Signed USD token prices for on-chain verification.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
