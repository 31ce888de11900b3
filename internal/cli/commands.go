package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRefreshCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Force a token refresh for this profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			creds, err := store.Load(ctx, a.cfg.Profile)
			if err != nil {
				return fmt.Errorf("no stored login for profile %q: %w", a.cfg.Profile, err)
			}

			client := a.newClient(creds.DeviceID)
			session, err := client.SessionFromRefreshToken(ctx, creds.RefreshToken)
			if err != nil {
				return fmt.Errorf("refresh failed: %w", err)
			}

			creds.AccessToken = session.AccessToken()
			creds.RefreshToken = session.RefreshToken()
			if err := store.Save(ctx, creds); err != nil {
				return fmt.Errorf("failed to persist refreshed tokens: %w", err)
			}

			a.logger.Info("tokens refreshed",
				"profile", a.cfg.Profile,
				"expires_at", session.ExpiresAt(),
			)
			return nil
		},
	}
}

func newMeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			session, _, err := a.resumeSession(ctx, store)
			if err != nil {
				return err
			}

			person, err := session.Me(ctx)
			if err != nil {
				return err
			}
			return printJSON(person)
		},
	}
}

func newFeedCmd(a *app) *cobra.Command {
	var discovery bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Fetch the friends feed (or discovery with --discovery)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			session, _, err := a.resumeSession(ctx, store)
			if err != nil {
				return err
			}

			if discovery {
				feed, err := session.DiscoveryFeed(ctx)
				if err != nil {
					return err
				}
				return printJSON(feed)
			}

			feed, err := session.FriendsFeed(ctx)
			if err != nil {
				return err
			}
			return printJSON(feed)
		},
	}

	cmd.Flags().BoolVar(&discovery, "discovery", false, "fetch the discovery feed instead")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget this profile's stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), a.cfg.Profile); err != nil {
				return err
			}

			a.logger.Info("logged out", "profile", a.cfg.Profile)
			return nil
		},
	}
}
