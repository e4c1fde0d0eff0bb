package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgelight/charbuilder/internal/engine/srd"
	"github.com/forgelight/charbuilder/internal/orchestrators/builder"
	"github.com/forgelight/charbuilder/internal/pkg/clock"
	"github.com/forgelight/charbuilder/internal/pkg/idgen"
	"github.com/forgelight/charbuilder/internal/redis"
	draftrepo "github.com/forgelight/charbuilder/internal/repositories/draft"
	builderservice "github.com/forgelight/charbuilder/internal/services/builder"
)

var (
	newOwnerID   string
	newDraftName string
	redisAddress string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a draft in Redis",
	Long:  `Create a new character draft in Redis for an owner, replacing any draft the owner already has.`,
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&newOwnerID, "owner", "", "owner ID for the draft (required)")
	newCmd.Flags().StringVar(&newDraftName, "name", "", "character name")
	newCmd.Flags().StringVar(&redisAddress, "redis-address", "localhost:6379", "Redis address")
	_ = newCmd.MarkFlagRequired("owner")
}

func runNew(cmd *cobra.Command, _ []string) error {
	client, err := redis.NewClient(redisAddress, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	orchestrator, err := builder.New(&builder.Config{
		DraftRepo:   draftrepo.NewRedisRepository(client),
		Engine:      srd.New(),
		IDGenerator: idgen.NewUUID("draft"),
		Clock:       clock.New(),
	})
	if err != nil {
		return err
	}

	output, err := orchestrator.CreateDraft(context.Background(), &builderservice.CreateDraftInput{
		OwnerID: newOwnerID,
		Name:    newDraftName,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created draft %s for owner %s\n", output.Draft.ID, output.Draft.OwnerID)
	return nil
}
