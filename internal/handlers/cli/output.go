package cli

import (
	"encoding/json"
	"fmt"

	"github.com/gabapcia/recoverywallet/internal/pkg/validator"

	"github.com/urfave/cli/v3"
)

// printJSON writes v as indented JSON to the root command's writer.
func printJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// validateFlags checks flag values gathered into a tagged struct.
func validateFlags(v any) error {
	if err := validator.Validate(v); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// fromFlag is the caller identity shared by every gated command.
func fromFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "from",
		Usage:    usage,
		Required: true,
	}
}

func idFlag(usage string) *cli.Uint64Flag {
	return &cli.Uint64Flag{
		Name:     "id",
		Usage:    usage,
		Required: true,
	}
}
