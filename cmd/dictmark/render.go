package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dictmark-dev/dictmark/internal/errors"
	"github.com/dictmark-dev/dictmark/pkg/media"
	"github.com/dictmark-dev/dictmark/pkg/profile"
	"github.com/dictmark-dev/dictmark/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		profilePath string
		category    string
		language    string
		mediaPrefix string
	)

	cmd := &cobra.Command{
		Use:   "render [entry.xml]",
		Short: "Render one entry document to markup",
		Long: `Render reads an entry XML document from a file (or stdin when no
argument is given), applies the display profile and writes the resulting
markup to stdout. Rendering never fails: malformed input degrades to
recovered text fragments or a placeholder.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readEntry(args)
			if err != nil {
				return err
			}

			var prof *profile.Profile
			if profilePath != "" {
				prof, err = profile.Load(profilePath)
				if err != nil {
					return errors.FromError(err, "D100").
						WithSuggestion("expected a JSON rule array or {\"rules\": [...]}")
				}
			}

			renderer := render.NewRenderer(render.Config{
				Media:           media.NewPassthroughResolver(mediaPrefix),
				DefaultLanguage: language,
			})

			fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(cmd.Context(), raw, prof, category))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Display profile JSON file")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Entry-level shared category value")
	cmd.Flags().StringVarP(&language, "lang", "l", "", "Inherited language filter")
	cmd.Flags().StringVar(&mediaPrefix, "media-prefix", "/media/", "URL prefix for relative illustration references")

	return cmd
}

func readEntry(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.FromError(err, "D400")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.FromError(err, "D400").
			WithSuggestion("check the entry file path: " + args[0])
	}
	return string(data), nil
}
