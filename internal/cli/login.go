package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/unofficialbereal/bereal-go/internal/credstore"
)

func newLoginCmd(a *app) *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in a device via phone verification",
		Long: `Runs the interactive phone verification flow and stores the resulting
tokens for this profile. The anti-bot challenge from the first step must be
solved outside this tool; paste the solution token when prompted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if phone == "" {
				phone = a.cfg.PhoneNumber
			}
			if phone == "" {
				return fmt.Errorf("a phone number is required (--phone or BEREAL_PHONE_NUMBER)")
			}

			deviceID := a.cfg.DeviceID
			if deviceID == "" {
				deviceID = uuid.NewString()
				a.logger.Info("generated new device id", "device_id", deviceID)
			}

			client := a.newClient(deviceID)
			flow := client.StartVerification(phone)

			blob, err := flow.DataExchange(ctx)
			if err != nil {
				return fmt.Errorf("data-exchange failed: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Challenge blob (solve externally):\n%s\n", blob)

			reader := bufio.NewReader(os.Stdin)

			solution, err := prompt(reader, "Challenge solution token: ")
			if err != nil {
				return err
			}

			if _, err := flow.RequestCode(ctx, solution); err != nil {
				return fmt.Errorf("request-code failed: %w", err)
			}
			a.logger.Info("verification code sent", "phone", phone)

			code, err := prompt(reader, "SMS code: ")
			if err != nil {
				return err
			}

			result, err := flow.CheckCode(ctx, code)
			if err != nil {
				return fmt.Errorf("check-code failed: %w", err)
			}

			session, err := client.LoginWithVerificationToken(ctx, result.Token)
			if err != nil {
				return fmt.Errorf("token exchange failed: %w", err)
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			err = store.Save(ctx, credstore.Credentials{
				Profile:      a.cfg.Profile,
				DeviceID:     deviceID,
				AccessToken:  session.AccessToken(),
				RefreshToken: session.RefreshToken(),
			})
			if err != nil {
				return fmt.Errorf("failed to store credentials: %w", err)
			}

			a.logger.Info("logged in",
				"profile", a.cfg.Profile,
				"user_id", session.UserID(),
				"expires_at", session.ExpiresAt(),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "phone number in E.164 form, e.g. +61400000000")

	return cmd
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
