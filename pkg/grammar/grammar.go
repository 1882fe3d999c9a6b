// Package grammar builds the static TextMate theme fragment for the
// highlighting kinds. This is the one-time export side of the system:
// editors that consume the incremental token stream still need a fixed
// mapping from kind ordinals to style scopes, and that mapping is
// generated here rather than maintained by hand in every client.
package grammar

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/semlight/pkg/highlight"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
)

// Rule styles one highlighting kind. Ordinal is the kind's wire value,
// Scope the TextMate scope clients attach their colors to.
type Rule struct {
	Kind    string `json:"kind"`
	Ordinal int    `json:"ordinal"`
	Scope   string `json:"scope"`
}

// Theme is the exported fragment: one rule per kind, in wire order.
type Theme struct {
	Name  string `json:"name"`
	Rules []Rule `json:"rules"`
}

// BuildTheme assembles the theme fragment from the scope table. It
// fails if any kind is missing a scope, so a gap can never reach an
// exported artifact.
func BuildTheme(ctx context.Context, name string) (*Theme, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("name", name).Msg("building theme fragment")

	if err := highlight.VerifyScopes(); err != nil {
		return nil, errors.Errorf("verifying scope table: %w", err)
	}

	theme := &Theme{Name: name}
	for _, k := range highlight.Kinds() {
		theme.Rules = append(theme.Rules, Rule{
			Kind:    k.String(),
			Ordinal: int(k),
			Scope:   highlight.TextMateScope(k),
		})
	}
	return theme, nil
}

// WriteJSON writes the theme fragment as indented JSON to path on fs.
func (t *Theme) WriteJSON(ctx context.Context, fs afero.Fs, path string) (err error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("writing theme fragment")

	f, err := fs.Create(path)
	if err != nil {
		return errors.Errorf("creating theme file %s: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return errors.Errorf("encoding theme file %s: %w", path, err)
	}
	return nil
}
