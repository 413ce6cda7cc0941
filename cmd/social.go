package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"yournews/logging"

	"github.com/spf13/cobra"
)

func init() {
	testSocialCommand := &cobra.Command{
		Use:   "test-social [text]",
		Short: "Send a test post with the configured social account",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			if !cfg.Notify.SocialConfigured() {
				fmt.Println("Social posting is disabled. Set SOCIAL_ENABLED=true and TWITTER_ACCESS_TOKEN.")
				os.Exit(1)
			}

			text := strings.Join(args, " ")
			if text == "" {
				text = fmt.Sprintf("YourNews test post %s", time.Now().Format(time.RFC3339))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := newSocialPoster(cfg).Post(ctx, text); err != nil {
				logging.Error().Err(err).Msg("Test post failed")
				os.Exit(1)
			}
			fmt.Println("Test post sent")
		},
	}
	RootCommand.AddCommand(testSocialCommand)
}
