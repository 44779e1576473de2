// DealFlow tracks venture-investment deals from first contact through
// due diligence to a portfolio or pass decision.
package main

import (
	"github.com/blackroad/dealflow/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// optional; env vars may also come from the shell
	_ = godotenv.Load()

	cli.Run()
}
