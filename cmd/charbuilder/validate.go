package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgelight/charbuilder/internal/codec"
	"github.com/forgelight/charbuilder/internal/engine"
	"github.com/forgelight/charbuilder/internal/engine/srd"
	"github.com/forgelight/charbuilder/internal/entities"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an exported character file",
	Long:  `Decode an exported character file and run every wizard step validation against it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

// loadDraftFile decodes an export file into a draft. Decode failures
// surface the decoder's message verbatim.
func loadDraftFile(path string) (*entities.CharacterDraft, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied path is the point
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result := codec.Deserialize(data)
	if !result.Success {
		return nil, fmt.Errorf("%s", result.Error)
	}

	var draft entities.CharacterDraft
	if err := json.Unmarshal(result.Character, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode character payload: %w", err)
	}
	return &draft, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	draft, err := loadDraftFile(args[0])
	if err != nil {
		return err
	}

	eng := srd.New()
	output, err := eng.ValidateDraft(context.Background(), &engine.ValidateDraftInput{Draft: draft})
	if err != nil {
		return err
	}

	if output.Result.Valid {
		fmt.Printf("%s is a valid character.\n", displayName(draft))
		return nil
	}

	fmt.Printf("%s has %d problem(s):\n", displayName(draft), len(output.Result.Errors))
	for _, msg := range output.Result.Errors {
		fmt.Printf("  - %s\n", msg)
	}
	os.Exit(1)
	return nil
}

func displayName(draft *entities.CharacterDraft) string {
	if draft.Name == "" {
		return "unnamed character"
	}
	return draft.Name
}
