package env

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/stagehand-cloud/stagehand/pkg/log"
)

var variables = new(Environment)

// Process the environment variables set for stagehand.
func Process() error {
	if err := envconfig.Process("stagehand", variables); err != nil {
		return errors.Wrap(err, "failed to process environment variables")
	}

	// set the log level
	if err := log.SetLevel(variables.LogLevel); err != nil {
		return errors.Wrap(err, "failed to set log level")
	}

	return nil
}

// Variables returns the processed environment variables.
func Variables() Environment {
	return *variables
}

// Environment defines the environment variables used
// by stagehand.
type Environment struct {
	LogLevel     string `default:"info"`
	Port         int    `default:"8080"`
	DatabaseType string `default:"sqlite"`
	DatabaseDSN  string `default:"file:stagehand.db"`
	AuthSecret   string `default:""`
}
