package cmd

import (
	"fmt"

	"github.com/bnema/studymate/internal/adapters/vault"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		length int
		apiKey bool
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a random hex token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if apiKey && cmd.Flags().Changed("length") {
				return fmt.Errorf("--length cannot be combined with --api-key")
			}

			var (
				token string
				err   error
			)
			if apiKey {
				token, err = vault.GenerateAPIKey()
			} else {
				token, err = vault.GenerateToken(length)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().IntVar(&length, "length", 32, "Number of random bytes (output is twice as many hex characters)")
	cmd.Flags().BoolVar(&apiKey, "api-key", false, "Print a StudyMate API key (sm_ prefix)")

	return cmd
}
