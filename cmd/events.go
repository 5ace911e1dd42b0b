package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/breezeops/breezectl/breeze"
)

var (
	eventsStart       string
	eventsEnd         string
	attendanceDetails bool
)

// eventsCmd groups the event subcommands
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List events and manage attendance",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List event instances",
	RunE:  runEventsList,
}

var eventsShowCmd = &cobra.Command{
	Use:   "show <instance-id>",
	Short: "Show a single event instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsShow,
}

var attendanceCmd = &cobra.Command{
	Use:   "attendance <instance-id>",
	Short: "List attendance for an event instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttendance,
}

var eligibleCmd = &cobra.Command{
	Use:   "eligible <instance-id>",
	Short: "List the people eligible to check in to an event instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runEligible,
}

var checkinCmd = &cobra.Command{
	Use:   "checkin <person-id> <instance-id>",
	Short: "Check a person in to an event instance",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAttendanceChange(args[0], args[1], breeze.DirectionIn)
	},
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout <person-id> <instance-id>",
	Short: "Check a person out of an event instance",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAttendanceChange(args[0], args[1], breeze.DirectionOut)
	},
}

func init() {
	eventsListCmd.Flags().StringVar(&eventsStart, "start", "", "range start (YYYY-MM-DD, defaults to current month)")
	eventsListCmd.Flags().StringVar(&eventsEnd, "end", "", "range end (YYYY-MM-DD)")
	attendanceCmd.Flags().BoolVar(&attendanceDetails, "details", false, "include person details")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsShowCmd)
	eventsCmd.AddCommand(attendanceCmd)
	eventsCmd.AddCommand(eligibleCmd)
	eventsCmd.AddCommand(checkinCmd)
	eventsCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(eventsCmd)
}

func runEventsList(cmd *cobra.Command, args []string) error {
	events, err := breezeClient.ListEvents(context.Background(), breeze.EventsOptions{
		Start: eventsStart,
		End:   eventsEnd,
	})
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No events found.")
		return nil
	}

	fmt.Printf("Found %d events:\n", len(events))
	fmt.Println(strings.Repeat("-", 60))
	for _, event := range events {
		fmt.Printf("• %s (instance %s)\n", event.Name, event.ID)
		fmt.Printf("  %s → %s\n", event.StartDatetime, event.EndDatetime)
	}
	return nil
}

func runEventsShow(cmd *cobra.Command, args []string) error {
	event, err := breezeClient.GetEvent(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", event.Name)
	fmt.Printf("  Instance: %s\n", event.ID)
	fmt.Printf("  Event: %s\n", event.EventID)
	fmt.Printf("  Start: %s\n", event.StartDatetime)
	fmt.Printf("  End: %s\n", event.EndDatetime)
	return nil
}

func runAttendance(cmd *cobra.Command, args []string) error {
	records, err := breezeClient.ListAttendance(context.Background(), args[0], attendanceDetails)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No attendance records found.")
		return nil
	}

	fmt.Printf("%d attendance records:\n", len(records))
	for _, record := range records {
		fmt.Printf("• person %s (checked in %s)\n", record.PersonID, record.CreatedOn)
	}
	return nil
}

func runEligible(cmd *cobra.Command, args []string) error {
	people, err := breezeClient.ListEligiblePeople(context.Background(), args[0])
	if err != nil {
		return err
	}

	if len(people) == 0 {
		fmt.Println("No eligible people found.")
		return nil
	}

	fmt.Printf("%d eligible people:\n", len(people))
	for _, person := range people {
		fmt.Printf("• %s (ID: %s)\n", person.DisplayName(), person.ID)
	}
	return nil
}

func runAttendanceChange(personID, instanceID string, direction breeze.AttendanceDirection) error {
	if err := breezeClient.AddAttendance(context.Background(), personID, instanceID, direction); err != nil {
		return err
	}

	if breezeClient.DryRun() {
		fmt.Printf("[DRY RUN] Would record direction=%s for person %s at instance %s\n", direction, personID, instanceID)
		return nil
	}

	fmt.Printf("✓ Recorded direction=%s for person %s at instance %s\n", direction, personID, instanceID)
	return nil
}
