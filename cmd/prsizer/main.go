package main

import (
	"os"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/prsizer/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
