package decode_line

import (
	"github.com/spf13/cobra"
	"github.com/walteh/semlight/pkg/highlight"
	"gitlab.com/tozd/go/errors"
)

// NewDecodeLineCommand builds a debugging command that decodes one
// base64 token line back into readable records.
func NewDecodeLineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode-line <tokens>",
		Short: "decode a base64 token line into its records",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		decoded, err := highlight.DecodeLine(args[0])
		if err != nil {
			return errors.Errorf("decoding token line: %w", err)
		}
		for _, tok := range decoded {
			cmd.Printf("character=%d length=%d kind=%s (%d)\n",
				tok.Character, tok.Length, tok.Kind, int(tok.Kind))
		}
		return nil
	}

	return cmd
}
