package main

import (
	"github.com/stagehand-cloud/stagehand/cmd"
	"github.com/stagehand-cloud/stagehand/pkg/env"
	"github.com/stagehand-cloud/stagehand/pkg/log"
)

func main() {
	if err := env.Process(); err != nil {
		log.Fatal("environment failure", "error", err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal("stagehand failure", "error", err)
	}
}
