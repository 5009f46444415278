package migrate

import (
	"github.com/spf13/cobra"
	"github.com/stagehand-cloud/stagehand/pkg/db"
	"github.com/stagehand-cloud/stagehand/pkg/log"
)

const (
	usage   = "migrate"
	short   = "Run stagehand database migrations"
	long    = "This command migrates the stagehand database schema and exits"
	example = "stagehand migrate"
)

var (
	// Cmd is the migrate command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Aliases: []string{"m"},
		Example: example,
		RunE:    migrate,
	}
)

func migrate(cmd *cobra.Command, args []string) error {
	log.Info("migrating database")
	return db.Migrate()
}
