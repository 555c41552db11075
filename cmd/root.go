package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func Execute() error {
	root, app := newRootCmd()
	return runRoot(root, app)
}

// runRoot executes root and then releases what the commands opened. Cobra
// skips post-run hooks when a command fails, so cleanup cannot live there.
func runRoot(root *cobra.Command, app *app) error {
	err := root.Execute()
	if closeErr := app.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}

	return err
}

func newRootCmd() (*cobra.Command, *app) {
	rootCmd := &cobra.Command{
		Use:           "sm",
		Short:         "StudyMate CLI (sm): encrypted AI provider keys and study material generation",
		Long:          "sm keeps third-party AI provider keys encrypted at rest and uses them to turn study material into flashcards, study guides and practice tests, or to chat with a model.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newVaultCmd(app),
		newTokenCmd(),
		newKeyCmd(app),
		newGenerateCmd(app),
		newChatCmd(app),
	)

	return rootCmd, app
}
