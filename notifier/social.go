package notifier

import (
	"context"
	"fmt"
	"time"

	"yournews/logging"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

type SocialPoster interface {
	Post(ctx context.Context, text string) error
}

type TwitterConfig struct {
	Enabled     bool
	APIURL      string
	AccessToken string
	Timeout     time.Duration
}

// TwitterClient posts through the v2 tweets endpoint with a user access token.
type TwitterClient struct {
	client *resty.Client
}

type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// NewSocialPoster returns a Twitter client, or a poster that silently skips
// when posting is disabled or no token is configured.
func NewSocialPoster(cfg TwitterConfig) SocialPoster {
	if !cfg.Enabled || cfg.AccessToken == "" {
		return disabledSocial{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	httpClient := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.AccessToken,
		TokenType:   "Bearer",
	}))
	client := resty.NewWithClient(httpClient).
		SetBaseURL(cfg.APIURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	return &TwitterClient{client: client}
}

func (t *TwitterClient) Post(ctx context.Context, text string) error {
	var result tweetResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"text": text}).
		SetResult(&result).
		Post("/2/tweets")
	if err != nil {
		return fmt.Errorf("post tweet: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("post tweet: unexpected status %d: %s", resp.StatusCode(), resp.String())
	}
	if result.Data.ID == "" {
		return fmt.Errorf("post tweet: no tweet id in response")
	}
	logging.FromContext(ctx).Info().Str("tweet_id", result.Data.ID).Msg("Posted tweet")
	return nil
}

type disabledSocial struct{}

func (disabledSocial) Post(ctx context.Context, text string) error {
	logging.FromContext(ctx).Debug().Msg("Social posting not configured, skipping")
	return nil
}
