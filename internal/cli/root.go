// Package cli implements the bereal command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/unofficialbereal/bereal-go/internal/credstore"
	"github.com/unofficialbereal/bereal-go/pkg/berealsdk"
	"github.com/unofficialbereal/bereal-go/pkg/slogx"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// app carries the shared state every subcommand needs.
type app struct {
	cfg    Config
	logger *slog.Logger
}

// Execute runs the bereal CLI.
func Execute() error {
	a := &app{}
	var profileFlag string

	root := &cobra.Command{
		Use:           "bereal",
		Short:         "Unofficial CLI for the BeReal mobile API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if profileFlag != "" {
				cfg.Profile = profileFlag
			}
			a.cfg = cfg
			a.logger = slogx.New(slogx.Config{
				App:     "bereal",
				Version: Version,
				Level:   cfg.LogLevel,
				Format:  cfg.LogFormat,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&profileFlag, "profile", "", "credential profile to use")

	root.AddCommand(
		newLoginCmd(a),
		newRefreshCmd(a),
		newMeCmd(a),
		newFeedCmd(a),
		newLogoutCmd(a),
	)

	return root.Execute()
}

// openStore opens the credential store, creating its directory when needed.
func (a *app) openStore() (*credstore.Store, error) {
	if dir := filepath.Dir(a.cfg.DatabaseFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}
	return credstore.Open(a.cfg.DatabaseFile)
}

// newClient builds an SDK client for the given device id, honoring the API
// base override from config.
func (a *app) newClient(deviceID string) *berealsdk.Client {
	client := berealsdk.NewClient(deviceID)
	if a.cfg.APIBaseURL != "" {
		client.APIBaseURL = a.cfg.APIBaseURL
	}
	return client
}

// resumeSession loads the profile's stored credentials and brings up a live
// session, refreshing through the auth service when the stored bearer has
// gone stale. Freshly granted tokens are persisted back.
func (a *app) resumeSession(ctx context.Context, store *credstore.Store) (*berealsdk.Session, *berealsdk.Client, error) {
	creds, err := store.Load(ctx, a.cfg.Profile)
	if err != nil {
		return nil, nil, fmt.Errorf("no stored login for profile %q (run `bereal login`): %w", a.cfg.Profile, err)
	}

	client := a.newClient(creds.DeviceID)

	session, err := client.NewSession(creds.AccessToken, nil)
	if err == nil {
		return session, client, nil
	}

	a.logger.Debug("stored access token unusable, refreshing", "profile", a.cfg.Profile, "reason", err)

	session, err = client.SessionFromRefreshToken(ctx, creds.RefreshToken)
	if err != nil {
		return nil, nil, fmt.Errorf("refresh failed, log in again: %w", err)
	}

	creds.AccessToken = session.AccessToken()
	creds.RefreshToken = session.RefreshToken()
	if err := store.Save(ctx, creds); err != nil {
		return nil, nil, fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}

	return session, client, nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
