package main

import (
	"os"

	"akeneo/endpoints/internal/cli"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := cli.NewRootCmd("endpoints").Execute(); err != nil {
		log.Errorf("Command failed: %v", err)
		os.Exit(1)
	}
}
