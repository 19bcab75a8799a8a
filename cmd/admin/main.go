package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kodipay/rentledger/pkg/config"
	"github.com/kodipay/rentledger/pkg/ledger"
	"github.com/kodipay/rentledger/pkg/storage"
	dydbstore "github.com/kodipay/rentledger/pkg/storage/dynamodb"
)

func newStore() (storage.Storage, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return dydbstore.New(dynamodb.NewFromConfig(awsCfg),
		cfg.TenantsTableName, cfg.PropertiesTableName, cfg.PaymentsTableName, cfg.RemindersTableName), nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <tenant-id>",
		Short: "Re-derive a tenant's running totals from the payment history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}
			result, err := ledger.NewReconciler(store).Reconcile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <owner-id>",
		Short: "Compute portfolio statistics for an owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}
			stats, err := ledger.NewPortfolioAggregator(store).OwnerStats(cmd.Context(), args[0], time.Now())
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	}
}

func duesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dues <tenant-id>",
		Short: "Show a tenant's outstanding dues as of today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}
			dues, err := ledger.NewDueAggregator(store).GetDues(cmd.Context(), args[0], time.Now())
			if err != nil {
				return err
			}
			return printJSON(dues)
		},
	}
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "rentledger-admin",
		Short: "Operator tooling for the tenant ledger",
	}

	rootCmd.AddCommand(
		reconcileCmd(),
		statsCmd(),
		duesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
