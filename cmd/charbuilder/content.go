package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgelight/charbuilder/internal/catalog"
	"github.com/forgelight/charbuilder/internal/rulebook/content"
)

var enabledPacks []string

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "List the selectable catalog content",
	Long:  `List every selectable species, class, and background, grouped by source. Enable expansion packs with --packs.`,
	RunE:  runContent,
}

func init() {
	contentCmd.Flags().StringSliceVar(&enabledPacks, "packs", nil, "expansion pack IDs to enable")
}

func runContent(cmd *cobra.Command, _ []string) error {
	available := content.ComputeAvailableContent(enabledPacks, catalog.Packs(), catalog.BaseContent())

	fmt.Println("Species:")
	for _, group := range available.Species {
		fmt.Printf("  [%s]\n", group.Source)
		for _, sp := range group.Items {
			line := fmt.Sprintf("    %s", sp.Name)
			for _, sub := range sp.Subspecies {
				line += fmt.Sprintf("\n      - %s", sub.Name)
			}
			fmt.Println(line)
		}
	}

	fmt.Println("Classes:")
	for _, group := range available.Classes {
		fmt.Printf("  [%s]\n", group.Source)
		for _, class := range group.Items {
			fmt.Printf("    %s (d%d)\n", class.Name, class.HitDie)
		}
	}

	fmt.Println("Backgrounds:")
	for _, group := range available.Backgrounds {
		fmt.Printf("  [%s]\n", group.Source)
		for _, bg := range group.Items {
			fmt.Printf("    %s\n", bg.Name)
		}
	}
	return nil
}
