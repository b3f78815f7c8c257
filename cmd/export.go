package cmd

import (
	"fmt"

	"game-datastore/core/storage"
	"game-datastore/feature/export"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var listExports bool

// exportCmd writes or lists table snapshots.
var exportCmd = &cobra.Command{
	Use:   "export [table]",
	Short: "Snapshot a table to object storage",
	Long: `Writes every document of the table as JSON to exports/<table>/<unix-nanos>.json in the
configured bucket. With --list, prints the existing snapshots instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, rt, err := exportService(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		if listExports {
			list, err := svc.ListExports(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, s := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					s.Object, humanize.Bytes(uint64(s.Size)), humanize.Time(s.CreatedAt))
			}
			return nil
		}

		snap, err := svc.ExportTable(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), snap)
	},
}

// importCmd restores a snapshot.
var importCmd = &cobra.Command{
	Use:   "import [table] [object]",
	Short: "Upsert the documents of a snapshot into a table",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, rt, err := exportService(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		n, err := svc.ImportTable(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %s rows into %s\n", humanize.Comma(int64(n)), args[0])
		return nil
	},
}

func exportService(cmd *cobra.Command) (*export.Service, *runtime, error) {
	rt, err := bootstrap(cmd.Context(), nil)
	if err != nil {
		return nil, nil, err
	}
	client, err := storage.NewClient(rt.cfg.Storage)
	if err != nil {
		rt.close()
		return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return export.NewService(rt.store, client, rt.cfg.Storage, rt.logger), rt, nil
}

func init() {
	exportCmd.Flags().BoolVar(&listExports, "list", false, "List existing snapshots instead of writing one")
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(importCmd)
}
