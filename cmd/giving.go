package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/breezeops/breezectl/breeze"
	"github.com/breezeops/breezectl/filter"
)

var (
	givingStart         string
	givingEnd           string
	givingPerson        string
	givingIncludeFamily bool
	givingFilter        string

	contribution breeze.ContributionParams
	generateUID  bool
	noConfirm    bool
)

// givingCmd groups the contribution subcommands
var givingCmd = &cobra.Command{
	Use:   "giving",
	Short: "List and manage contributions",
}

var givingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contributions",
	RunE:  runGivingList,
}

var givingAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a contribution",
	RunE:  runGivingAdd,
}

var givingEditCmd = &cobra.Command{
	Use:   "edit <payment-id>",
	Short: "Edit a contribution",
	Args:  cobra.ExactArgs(1),
	RunE:  runGivingEdit,
}

var givingDeleteCmd = &cobra.Command{
	Use:   "delete <payment-id>",
	Short: "Delete a contribution",
	Args:  cobra.ExactArgs(1),
	RunE:  runGivingDelete,
}

func init() {
	givingListCmd.Flags().StringVar(&givingStart, "start", "", "range start (DD-MM-YYYY)")
	givingListCmd.Flags().StringVar(&givingEnd, "end", "", "range end (DD-MM-YYYY)")
	givingListCmd.Flags().StringVar(&givingPerson, "person", "", "limit to one person ID")
	givingListCmd.Flags().BoolVar(&givingIncludeFamily, "include-family", false, "include family members (requires --person)")
	givingListCmd.Flags().StringVarP(&givingFilter, "filter", "f", "", "filter expression, e.g. 'Amount > 100'")

	addContributionFlags(givingAddCmd)
	givingAddCmd.Flags().BoolVar(&generateUID, "generate-uid", false, "generate a uid when no person or uid is given")

	addContributionFlags(givingEditCmd)

	givingDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")

	givingCmd.AddCommand(givingListCmd)
	givingCmd.AddCommand(givingAddCmd)
	givingCmd.AddCommand(givingEditCmd)
	givingCmd.AddCommand(givingDeleteCmd)
	rootCmd.AddCommand(givingCmd)
}

func addContributionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&contribution.Date, "date", "", "contribution date (DD-MM-YYYY)")
	cmd.Flags().StringVar(&contribution.Name, "name", "", "contributor name")
	cmd.Flags().StringVar(&contribution.PersonID, "person", "", "person ID")
	cmd.Flags().StringVar(&contribution.UID, "uid", "", "external unique identifier for the contributor")
	cmd.Flags().StringVar(&contribution.Method, "method", "", "payment method (Check, Cash, Credit/Debit Online, ...)")
	cmd.Flags().StringVar(&contribution.Amount, "amount", "", "contribution amount")
	cmd.Flags().StringVar(&contribution.FundsJSON, "funds-json", "", "fund split as JSON")
	cmd.Flags().StringVar(&contribution.BatchName, "batch-name", "", "batch name")
	cmd.Flags().StringVar(&contribution.BatchNumber, "batch-number", "", "batch number")
}

func runGivingList(cmd *cobra.Command, args []string) error {
	contributions, err := breezeClient.ListContributions(context.Background(), breeze.ContributionsOptions{
		StartDate:     givingStart,
		EndDate:       givingEnd,
		PersonID:      givingPerson,
		IncludeFamily: givingIncludeFamily,
	})
	if err != nil {
		return err
	}

	if givingFilter != "" {
		f, err := filter.Compile(givingFilter)
		if err != nil {
			return err
		}

		var matched []breeze.Contribution
		for _, c := range contributions {
			ok, err := f.MatchContribution(c)
			if err != nil {
				return err
			}
			if ok {
				matched = append(matched, c)
			}
		}
		contributions = matched
	}

	if len(contributions) == 0 {
		fmt.Println("No contributions found.")
		return nil
	}

	fmt.Printf("Found %d contributions:\n", len(contributions))
	fmt.Println(strings.Repeat("-", 60))
	for _, c := range contributions {
		name := strings.TrimSpace(c.FirstName + " " + c.LastName)
		fmt.Printf("• %s: %s via %s (payment %s, %s)\n", name, c.Amount, c.Method, c.PaymentID, c.PaidOn)
	}
	return nil
}

func runGivingAdd(cmd *cobra.Command, args []string) error {
	if contribution.PersonID == "" && contribution.UID == "" && generateUID {
		contribution.UID = uuid.NewString()
		logger.Info().Str("uid", contribution.UID).Msg("Generated contribution uid")
	}

	paymentID, err := breezeClient.AddContribution(context.Background(), contribution)
	if err != nil {
		return err
	}

	if breezeClient.DryRun() {
		fmt.Println("[DRY RUN] Would add contribution")
		return nil
	}

	fmt.Printf("✓ Added contribution (payment ID: %s)\n", paymentID)
	return nil
}

func runGivingEdit(cmd *cobra.Command, args []string) error {
	paymentID, err := breezeClient.EditContribution(context.Background(), args[0], contribution)
	if err != nil {
		return err
	}

	if breezeClient.DryRun() {
		fmt.Printf("[DRY RUN] Would edit contribution %s\n", args[0])
		return nil
	}

	fmt.Printf("✓ Edited contribution (payment ID: %s)\n", paymentID)
	return nil
}

func runGivingDelete(cmd *cobra.Command, args []string) error {
	if cfg.Safety.ConfirmDelete && !noConfirm && !breezeClient.DryRun() {
		fmt.Printf("Delete contribution %s? [y/N]: ", args[0])
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(strings.TrimSpace(response)) != "y" {
			fmt.Println("Deletion cancelled.")
			return nil
		}
	}

	paymentID, err := breezeClient.DeleteContribution(context.Background(), args[0])
	if err != nil {
		return err
	}

	if breezeClient.DryRun() {
		fmt.Printf("[DRY RUN] Would delete contribution %s\n", args[0])
		return nil
	}

	fmt.Printf("✓ Deleted contribution (payment ID: %s)\n", paymentID)
	return nil
}
