package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// payloadFlags read a JSON request body from --data or --file
type payloadFlags struct {
	Data string `flag:"data" validate:"omitempty,json"`
	File string
}

func (p *payloadFlags) register(cmd *cobra.Command, what string) {
	cmd.Flags().StringVar(&p.Data, "data", "", fmt.Sprintf("%s as inline JSON", what))
	cmd.Flags().StringVarP(&p.File, "file", "f", "", fmt.Sprintf("Read %s JSON from a file ('-' for stdin)", what))
	cmd.MarkFlagsMutuallyExclusive("data", "file")
}

func (p *payloadFlags) read(in io.Reader) (json.RawMessage, error) {
	if err := checkInput(p); err != nil {
		return nil, err
	}

	var raw []byte
	switch {
	case p.Data != "":
		raw = []byte(p.Data)
	case p.File == "-":
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = b
	case p.File != "":
		b, err := os.ReadFile(p.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p.File, err)
		}
		raw = b
	default:
		return nil, errors.New("a JSON body is required (use --data or --file)")
	}

	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid JSON")
	}
	return json.RawMessage(raw), nil
}
