package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	findAll    bool
	yesConfirm bool
)

// recordsCmd is the parent command for operator record access.
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Read and delete records from the command line",
	Long: `Operator access to the datastore. Tables may be given as the entity name
("Account") or the table name ("accounts").

Examples:
  records get accounts 1 2 3
  records find accounts username alice
  records find accounts email example.com --all
  records last accounts
  records delete accounts 4 --yes`,
}

var recordsGetCmd = &cobra.Command{
	Use:   "get [table] [id...]",
	Short: "Fetch documents by primary key",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer rt.close()

		docs, err := rt.store.FetchByIDs(cmd.Context(), args[0], args[1:])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), docs)
	},
}

var recordsFindCmd = &cobra.Command{
	Use:   "find [table] [field] [value]",
	Short: "Fetch documents whose field equals value",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer rt.close()

		if findAll {
			docs, err := rt.store.FetchAllByField(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), docs)
		}

		doc, err := rt.store.FetchData(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), doc)
	},
}

var recordsLastCmd = &cobra.Command{
	Use:   "last [table]",
	Short: "Fetch the document with the highest primary key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer rt.close()

		doc, err := rt.store.FetchLastID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), doc)
	},
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete [table] [id...]",
	Short: "Delete documents by primary key",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer rt.close()

		if !confirmDestructiveAction(cmd, fmt.Sprintf("delete %d id(s) from %s", len(args)-1, args[0])) {
			rt.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		res, err := rt.store.DeleteByIDs(cmd.Context(), args[0], args[1:])
		if err != nil {
			return err
		}
		rt.logger.Info("Records deleted", zap.String("table", args[0]), zap.Int64("rows", res.RowsAffected))
		return printJSON(cmd.OutOrStdout(), res)
	},
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction(cmd *cobra.Command, action string) bool {
	if yesConfirm {
		return true
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Type 'yes' to %s: ", action)
	reader := bufio.NewReader(cmd.InOrStdin())
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

func init() {
	recordsFindCmd.Flags().BoolVar(&findAll, "all", false, "Return every match instead of the first")
	recordsDeleteCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	recordsCmd.AddCommand(recordsGetCmd)
	recordsCmd.AddCommand(recordsFindCmd)
	recordsCmd.AddCommand(recordsLastCmd)
	recordsCmd.AddCommand(recordsDeleteCmd)
	RootCmd.AddCommand(recordsCmd)
}

