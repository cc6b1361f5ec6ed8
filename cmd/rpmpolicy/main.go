package main

import (
	"os"

	"github.com/yeager/rpm-policy-checker/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
