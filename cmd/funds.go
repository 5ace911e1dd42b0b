package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var includeTotals bool

// fundsCmd represents the funds command
var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "List giving funds",
	RunE:  runFunds,
}

// pledgesCmd groups the pledge subcommands
var pledgesCmd = &cobra.Command{
	Use:   "pledges",
	Short: "List pledge campaigns and pledges",
}

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "List pledge campaigns",
	RunE:  runCampaigns,
}

var pledgesListCmd = &cobra.Command{
	Use:   "list <campaign-id>",
	Short: "List the pledges within a campaign",
	Args:  cobra.ExactArgs(1),
	RunE:  runPledgesList,
}

func init() {
	fundsCmd.Flags().BoolVar(&includeTotals, "totals", false, "include per-fund totals")

	pledgesCmd.AddCommand(campaignsCmd)
	pledgesCmd.AddCommand(pledgesListCmd)
	rootCmd.AddCommand(fundsCmd)
	rootCmd.AddCommand(pledgesCmd)
}

func runFunds(cmd *cobra.Command, args []string) error {
	funds, err := breezeClient.ListFunds(context.Background(), includeTotals)
	if err != nil {
		return err
	}

	if len(funds) == 0 {
		fmt.Println("No funds found.")
		return nil
	}

	for _, fund := range funds {
		fmt.Printf("• %s (ID: %s)", fund.Name, fund.ID)
		if fund.Total != "" {
			fmt.Printf(" [total: %s]", fund.Total)
		}
		fmt.Println()
	}
	return nil
}

func runCampaigns(cmd *cobra.Command, args []string) error {
	campaigns, err := breezeClient.ListCampaigns(context.Background())
	if err != nil {
		return err
	}

	if len(campaigns) == 0 {
		fmt.Println("No campaigns found.")
		return nil
	}

	for _, campaign := range campaigns {
		fmt.Printf("• %s (ID: %s, %s pledges, %s pledged)\n",
			campaign.Name, campaign.ID, campaign.NumberOfPledges, campaign.TotalPledged)
	}
	return nil
}

func runPledgesList(cmd *cobra.Command, args []string) error {
	pledges, err := breezeClient.ListPledges(context.Background(), args[0])
	if err != nil {
		return err
	}

	if len(pledges) == 0 {
		fmt.Println("No pledges found.")
		return nil
	}

	for _, pledge := range pledges {
		fmt.Printf("• person %s: %s %s (funded %s)\n",
			pledge.PersonID, pledge.Amount, pledge.Frequency, pledge.FundedAmount)
	}
	return nil
}
