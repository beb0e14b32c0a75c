package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/yaduha/ovp/internal/config"
	"github.com/yaduha/ovp/internal/vocab"
)

// MigrateVocabularyCommand creates the migrate-vocabulary command.
func MigrateVocabularyCommand() *cobra.Command {
	var (
		verify    bool
		dryRun    bool
		dbConnStr string
	)

	cmd := &cobra.Command{
		Use:   "migrate-vocabulary",
		Short: "Seed the built-in lexicon into database storage",
		Long: `Seed the built-in word lists into the lexicon_entries table, enabling
vocabulary updates without a rebuild.

Examples:
  # Seed the lexicon
  ./yaduha migrate-vocabulary

  # Dry run to see what would be written
  ./yaduha migrate-vocabulary --dry-run

  # Seed and verify the round trip
  ./yaduha migrate-vocabulary --verify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrateVocabulary(dbConnStr, verify, dryRun)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Verify the database contents after seeding")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be seeded without making changes")
	cmd.Flags().StringVar(&dbConnStr, "db", "", "Database connection string (overrides env var)")

	return cmd
}

func runMigrateVocabulary(dbConnStr string, verify, dryRun bool) error {
	ctx := context.Background()

	if dbConnStr == "" {
		dbConnStr = config.GetConnectionString()
	}

	store := vocab.NewStore()

	if dryRun {
		fmt.Printf("DRY RUN - no changes will be made\n")
		total := 0
		for _, c := range vocab.Categories() {
			n := len(store.Entries(c))
			total += n
			fmt.Printf("  %s: %d entries\n", c, n)
		}
		fmt.Printf("would seed %d entries into %s\n", total, maskConnectionString(dbConnStr))
		return nil
	}

	fmt.Printf("Seeding lexicon at %s\n", maskConnectionString(dbConnStr))

	db, err := sqlx.Connect("postgres", dbConnStr)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	repo := vocab.NewRepository(db)
	start := time.Now()
	if err := repo.SeedFromStore(ctx, store); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	fmt.Printf("Lexicon seeded in %v\n", time.Since(start).Round(time.Millisecond))

	if verify {
		fmt.Printf("Verifying round trip...\n")
		loaded, err := vocab.NewStoreFromRepository(ctx, repo)
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		for _, c := range vocab.Categories() {
			want, got := store.Entries(c), loaded.Entries(c)
			if len(want) != len(got) {
				return fmt.Errorf("verification failed: %s has %d entries, want %d", c, len(got), len(want))
			}
			for i := range want {
				if want[i] != got[i] {
					return fmt.Errorf("verification failed: %s entry %d is %+v, want %+v", c, i, got[i], want[i])
				}
			}
		}
		fmt.Printf("Verification completed\n")
	}

	return nil
}

// RunMigrateVocabulary is the CLI wrapper for the migrate-vocabulary
// command.
func RunMigrateVocabulary(ctx context.Context, args []string) error {
	cmd := MigrateVocabularyCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}
