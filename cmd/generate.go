package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/studymate/internal/adapters/extract"
	"github.com/bnema/studymate/internal/application"
	"github.com/bnema/studymate/internal/domain"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	provider   string
	file       string
	text       string
	count      int
	difficulty string
	focus      []string
	model      string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.provider, "provider", string(domain.ProviderOpenAI), "Provider: openai, anthropic or google")
	cmd.Flags().StringVar(&f.file, "file", "", "Read study material from a .txt, .md, .csv or .json file")
	cmd.Flags().StringVar(&f.text, "text", "", "Study material given inline")
	cmd.Flags().IntVar(&f.count, "count", 10, "Number of items to generate")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", string(domain.DifficultyMedium), "Difficulty: easy, medium or hard")
	cmd.Flags().StringSliceVar(&f.focus, "focus", nil, "Focus areas, comma separated")
	cmd.Flags().StringVar(&f.model, "model", "", "Model override")
	cmd.MarkFlagsMutuallyExclusive("file", "text")
	cmd.MarkFlagsOneRequired("file", "text")
}

func (f *generateFlags) command(owner string) (application.GenerateCommand, error) {
	provider, err := domain.ParseProvider(f.provider)
	if err != nil {
		return application.GenerateCommand{}, err
	}

	difficulty := domain.Difficulty(strings.ToLower(strings.TrimSpace(f.difficulty)))
	switch difficulty {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
	default:
		return application.GenerateCommand{}, fmt.Errorf("unsupported difficulty %q", f.difficulty)
	}

	content := f.text
	if f.file != "" {
		content, err = extract.FromFile(f.file)
		if err != nil {
			return application.GenerateCommand{}, err
		}
	}
	if strings.TrimSpace(content) == "" {
		return application.GenerateCommand{}, errors.New("study material is empty")
	}

	return application.GenerateCommand{
		Owner:    owner,
		Provider: provider,
		Content:  content,
		Options: domain.GenerationOptions{
			Count:      f.count,
			Difficulty: difficulty,
			FocusAreas: f.focus,
			Model:      f.model,
		},
	}, nil
}

func newGenerateCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate study material with a stored provider key",
	}

	cmd.AddCommand(
		newGenerateSubCmd(app, "flashcards", "Generate flashcards", "Generating flashcards...",
			func(ctx context.Context, svc *application.ContentService, c application.GenerateCommand) (any, error) {
				cards, err := svc.GenerateFlashcards(ctx, c)
				return cards, err
			}),
		newGenerateSubCmd(app, "study-guide", "Generate a study guide", "Generating study guide...",
			func(ctx context.Context, svc *application.ContentService, c application.GenerateCommand) (any, error) {
				guide, err := svc.GenerateStudyGuide(ctx, c)
				return guide, err
			}),
		newGenerateSubCmd(app, "test", "Generate a practice test", "Generating practice test...",
			func(ctx context.Context, svc *application.ContentService, c application.GenerateCommand) (any, error) {
				test, err := svc.GenerateTest(ctx, c)
				return test, err
			}),
	)

	return cmd
}

type generateFunc func(ctx context.Context, svc *application.ContentService, c application.GenerateCommand) (any, error)

func newGenerateSubCmd(app *app, use, short, label string, generate generateFunc) *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			request, err := flags.command(app.cfg.Owner)
			if err != nil {
				return err
			}

			svc, err := app.Services(cmd.Context())
			if err != nil {
				return err
			}

			var result any
			err = runWithSpinner(cmd, label, func(ctx context.Context) error {
				var genErr error
				result, genErr = generate(ctx, svc.content, request)
				return genErr
			})
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	flags.register(cmd)

	return cmd
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
