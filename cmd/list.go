package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"slidecraft/internal/console"
	"slidecraft/internal/storage"
	"slidecraft/pkg/config"
)

var listRemote bool

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List saved presentations",
	Long:  `List .pptx decks in a local directory, or the decks published to the configured bucket with --remote.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listRemote, "remote", "r", false, "List decks published to Cloud Storage")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var (
		decks []string
		err   error
	)

	if listRemote {
		decks, err = listPublished(cmd)
	} else {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		decks, err = storage.NewLocalStorage().ListDecks(dir)
	}
	if err != nil {
		return err
	}

	if len(decks) == 0 {
		fmt.Println(console.InfoStyle.Render("No presentations found"))
		return nil
	}
	for _, d := range decks {
		fmt.Println(d)
	}
	return nil
}

func listPublished(cmd *cobra.Command) ([]string, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.GCSBucket == "" {
		return nil, fmt.Errorf("GCS_BUCKET is not set")
	}

	publisher, err := storage.NewGCSPublisher(cmd.Context(), cfg.GCSBucket, cfg.GCS.Prefix, cfg.GCS.CredentialsFile)
	if err != nil {
		return nil, err
	}
	defer func() { _ = publisher.Close() }()

	return publisher.List(cmd.Context())
}
