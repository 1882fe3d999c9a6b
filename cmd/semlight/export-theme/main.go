package export_theme

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/semlight/pkg/grammar"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	name   string
	output string
	debug  bool
}

func NewExportThemeCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "export-theme",
		Short: "write the TextMate theme fragment for the highlighting kinds",
	}

	cmd.Flags().StringVar(&me.name, "name", "semlight", "theme fragment name")
	cmd.Flags().StringVar(&me.output, "output", "semlight-theme.json", "output file path")
	cmd.Flags().BoolVar(&me.debug, "debug", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context) error {
	level := zerolog.InfoLevel
	if me.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().
		Str("component", "export-theme").
		Timestamp().
		Logger()
	ctx = logger.WithContext(ctx)

	theme, err := grammar.BuildTheme(ctx, me.name)
	if err != nil {
		return errors.Errorf("building theme fragment: %w", err)
	}

	if err := theme.WriteJSON(ctx, afero.NewOsFs(), me.output); err != nil {
		return errors.Errorf("writing theme fragment: %w", err)
	}

	logger.Info().Str("path", me.output).Int("rules", len(theme.Rules)).Msg("theme fragment written")
	return nil
}
