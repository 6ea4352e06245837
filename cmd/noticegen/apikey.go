package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"noticegen/internal/secrets"
)

func newAPIKeyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage the drafting API key in the OS keychain",
	}

	var key string
	set := &cobra.Command{
		Use:   "set",
		Short: "Store the API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(key) == "" {
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title("API key").
						EchoMode(huh.EchoModePassword).
						Value(&key),
				)).WithAccessible(true).
					WithInput(cmd.InOrStdin()).
					WithOutput(cmd.OutOrStdout())
				if err := form.RunWithContext(cmd.Context()); err != nil {
					return err
				}
			}
			if err := secrets.SetAPIKey(key); err != nil {
				return err
			}
			a.log.Info("API key saved", "service", secrets.KeyringService)
			return nil
		},
	}
	set.Flags().StringVar(&key, "key", "", "API key (prompted when empty)")

	del := &cobra.Command{
		Use:   "delete",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := secrets.DeleteAPIKey()
			if errors.Is(err, secrets.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "no API key stored")
				return nil
			}
			if err != nil {
				return err
			}
			a.log.Info("API key deleted")
			return nil
		},
	}

	cmd.AddCommand(set, del)
	return cmd
}
