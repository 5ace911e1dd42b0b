package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var tagsFolder string

// tagsCmd groups the tag subcommands
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags and tag folders",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags",
	RunE:  runTagsList,
}

var tagsFoldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List tag folders",
	RunE:  runTagFolders,
}

func init() {
	tagsListCmd.Flags().StringVar(&tagsFolder, "folder", "", "limit to one folder ID")

	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsFoldersCmd)
	rootCmd.AddCommand(tagsCmd)
}

func runTagsList(cmd *cobra.Command, args []string) error {
	tags, err := breezeClient.ListTags(context.Background(), tagsFolder)
	if err != nil {
		return err
	}

	if len(tags) == 0 {
		fmt.Println("No tags found.")
		return nil
	}

	for _, tag := range tags {
		fmt.Printf("• %s (ID: %s, folder: %s)\n", tag.Name, tag.ID, tag.FolderID)
	}
	return nil
}

func runTagFolders(cmd *cobra.Command, args []string) error {
	folders, err := breezeClient.ListTagFolders(context.Background())
	if err != nil {
		return err
	}

	if len(folders) == 0 {
		fmt.Println("No tag folders found.")
		return nil
	}

	for _, folder := range folders {
		fmt.Printf("• %s (ID: %s)\n", folder.Name, folder.ID)
	}
	return nil
}
