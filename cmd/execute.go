package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stagehand-cloud/stagehand/cmd/migrate"
	"github.com/stagehand-cloud/stagehand/cmd/start"
)

var cmds = []*cobra.Command{
	start.Cmd,
	migrate.Cmd,
}

// Execute builds the command tree and executes commands.
func Execute() error {
	command := &cobra.Command{
		Use: "stagehand",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}

	for _, c := range cmds {
		command.AddCommand(c)
	}

	return command.Execute()
}
