// SPDX-License-Identifier: GPL-3.0-or-later
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Exchange username and password for a new access token",
		Long: `login requests a new access token with the credentials from
INSTAPAPER_USERNAME and INSTAPAPER_PASSWORD and replaces the cached one.`,
		Args: cobra.NoArgs,
		RunE: a.runLogin,
	}
}

func (a *app) runLogin(cmd *cobra.Command, args []string) error {
	_, err := a.login(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Access token cached in %s\n", a.conf.CredentialsFile)
	return nil
}
