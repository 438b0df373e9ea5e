package commands

import (
	"fmt"

	"github.com/ArowuTest/engage-crm/internal/importer"
	"github.com/spf13/cobra"
)

var seedCreatedBy string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample customers, orders and segments",
	Long: `Load a small sample dataset through the regular services, so customer
aggregates are derived from the seeded orders.

With the memory storage driver the data only lives for this process, so seed
is mostly useful against MongoDB.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedCreatedBy, "created-by", "crmctl", "creator recorded on the seeded segments")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, stores, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer stores.Close(ctx)

	summary, err := importer.Seed(ctx, svc.Customers, svc.Segments, seedCreatedBy)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d customers, %d orders and %d segments\n",
		summary.Customers, summary.Orders, summary.Segments)
	return nil
}
