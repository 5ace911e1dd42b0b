package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/breezeops/breezectl/breeze"
	"github.com/breezeops/breezectl/filter"
)

var (
	peopleLimit   int
	peopleOffset  int
	peopleDetails bool
	peopleFilter  string
)

// peopleCmd groups the people subcommands
var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List and inspect people",
}

var peopleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List people in your Breeze account",
	RunE:  runPeopleList,
}

var peopleShowCmd = &cobra.Command{
	Use:   "show <person-id>",
	Short: "Show the full record for one person",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeopleShow,
}

var profileFieldsCmd = &cobra.Command{
	Use:   "profile-fields",
	Short: "List the profile sections and fields of your account",
	RunE:  runProfileFields,
}

func init() {
	peopleListCmd.Flags().IntVar(&peopleLimit, "limit", 0, "maximum number of people to return")
	peopleListCmd.Flags().IntVar(&peopleOffset, "offset", 0, "number of people to skip")
	peopleListCmd.Flags().BoolVar(&peopleDetails, "details", false, "include profile details")
	peopleListCmd.Flags().StringVarP(&peopleFilter, "filter", "f", "", "filter expression, e.g. 'FirstName == \"John\"'")

	peopleCmd.AddCommand(peopleListCmd)
	peopleCmd.AddCommand(peopleShowCmd)
	peopleCmd.AddCommand(profileFieldsCmd)
	rootCmd.AddCommand(peopleCmd)
}

func runPeopleList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	people, err := breezeClient.ListPeople(ctx, breeze.PeopleOptions{
		Limit:   peopleLimit,
		Offset:  peopleOffset,
		Details: peopleDetails,
	})
	if err != nil {
		return err
	}

	if peopleFilter != "" {
		f, err := filter.Compile(peopleFilter)
		if err != nil {
			return err
		}

		var matched []breeze.Person
		for _, person := range people {
			ok, err := f.MatchPerson(person)
			if err != nil {
				return err
			}
			if ok {
				matched = append(matched, person)
			}
		}
		people = matched
	}

	if len(people) == 0 {
		fmt.Println("No people found.")
		return nil
	}

	fmt.Printf("Found %d people:\n", len(people))
	fmt.Println(strings.Repeat("-", 60))
	for _, person := range people {
		fmt.Printf("• %s (ID: %s)\n", person.DisplayName(), person.ID)
	}
	return nil
}

func runPeopleShow(cmd *cobra.Command, args []string) error {
	person, err := breezeClient.GetPersonDetails(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", person.DisplayName())
	fmt.Printf("  ID: %s\n", person.ID)
	if person.Path != "" {
		fmt.Printf("  Path: %s\n", person.Path)
	}
	if len(person.Details) > 0 {
		fmt.Printf("  Details: %s\n", string(person.Details))
	}
	return nil
}

func runProfileFields(cmd *cobra.Command, args []string) error {
	sections, err := breezeClient.ListProfileFields(context.Background())
	if err != nil {
		return err
	}

	for _, section := range sections {
		fmt.Printf("%s (ID: %s)\n", section.Name, section.ID)
		for _, field := range section.Fields {
			fmt.Printf("  • %s [%s] (ID: %s)\n", field.Name, field.FieldType, field.ID)
		}
	}
	return nil
}
