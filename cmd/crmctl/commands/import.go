package commands

import (
	"fmt"
	"os"

	"github.com/ArowuTest/engage-crm/internal/importer"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import-customers <csv-file>",
	Short: "Import customers from a CSV file",
	Long: `Import customers from a CSV file with a header row.

Required columns: name, email, phone
Optional columns: totalOrders, totalSpend, totalVisits

Rows that fail validation are skipped and listed at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	ctx := cmd.Context()
	svc, stores, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer stores.Close(ctx)

	result, err := importer.ImportCustomers(ctx, file, svc.Customers)
	if err != nil {
		if result != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Import stopped after %d customers\n", result.Imported)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d customers, skipped %d rows\n", result.Imported, result.Skipped)
	for _, e := range result.Errors {
		fmt.Fprintln(out, "  "+e)
	}
	return nil
}
