package main

import (
	"os"

	"github.com/printtrace/printtrace-go/cmd/printtrace/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
