package cmd

import (
	"context"

	"github.com/bnema/studymate/internal/application"
	"github.com/bnema/studymate/internal/domain"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var (
		providerName string
		message      string
		system       string
		temperature  float64
		maxTokens    int
		model        string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Send one message to a provider and print the reply",
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, err := domain.ParseProvider(providerName)
			if err != nil {
				return err
			}

			messages := make([]domain.ChatMessage, 0, 2)
			if system != "" {
				messages = append(messages, domain.ChatMessage{Role: domain.ChatRoleSystem, Content: system})
			}
			messages = append(messages, domain.ChatMessage{Role: domain.ChatRoleUser, Content: message})

			svc, err := app.Services(cmd.Context())
			if err != nil {
				return err
			}

			var completion domain.ChatCompletion
			err = runWithSpinner(cmd, "Waiting for reply...", func(ctx context.Context) error {
				var chatErr error
				completion, chatErr = svc.content.Chat(ctx, application.ChatCommand{
					Owner:    app.cfg.Owner,
					Provider: provider,
					Messages: messages,
					Options: domain.ChatOptions{
						Temperature: &temperature,
						MaxTokens:   maxTokens,
						Model:       model,
					},
				})
				return chatErr
			})
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), completion)
		},
	}

	cmd.Flags().StringVar(&providerName, "provider", string(domain.ProviderOpenAI), "Provider: openai, anthropic or google")
	cmd.Flags().StringVar(&message, "message", "", "User message")
	cmd.Flags().StringVar(&system, "system", "", "Optional system prompt")
	cmd.Flags().Float64Var(&temperature, "temperature", domain.DefaultChatTemperature, "Sampling temperature")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 1000, "Maximum tokens in the reply")
	cmd.Flags().StringVar(&model, "model", "", "Model override")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
