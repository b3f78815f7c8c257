package cmd

import (
	"fmt"

	"game-datastore/core/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// schemaCmd groups schema maintenance commands.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Synchronize or verify the registered table schemas",
}

// schemaSyncCmd creates or alters tables to match the registered entities.
var schemaSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Create or alter tables to match the registered entities",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), func(c *config.Config) { c.Database.Synchronize = true })
		if err != nil {
			return err
		}
		defer rt.close()

		rt.logger.Info("Schema synchronized", zap.Strings("tables", rt.store.Tables()))
		return nil
	},
}

// schemaVerifyCmd compares the registered entities against the live tables.
var schemaVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Report tables and columns missing from the database",
	Long:  `Compares every registered entity with the live table. Exits non-zero when a table is missing or lacks columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), func(c *config.Config) { c.Database.Synchronize = false })
		if err != nil {
			return err
		}
		defer rt.close()

		report := rt.store.VerifySchema(cmd.Context())
		if err := printJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
		if !report.Matched {
			return fmt.Errorf("schema does not match the registered entities")
		}
		return nil
	},
}

func init() {
	schemaCmd.AddCommand(schemaSyncCmd)
	schemaCmd.AddCommand(schemaVerifyCmd)
	RootCmd.AddCommand(schemaCmd)
}
