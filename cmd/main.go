package main

import (
	"os"

	"countrygdp/internal/app"
)

// @title Country GDP API
// @version 1.0
// @description Fetches country and USD exchange-rate data, computes estimated GDP and serves it over HTTP.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
