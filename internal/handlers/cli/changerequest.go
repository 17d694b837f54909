package cli

import (
	"context"

	"github.com/gabapcia/recoverywallet/internal/recovery"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v3"
)

// changeRequestCommand groups the spender change request subcommands.
//
// Usage example:
//
//	recoverywallet change-request submit --from 0xGUARDIAN --new-spender 0xNEW
//	recoverywallet change-request confirm --from 0xGUARDIAN --id 0
//	recoverywallet change-request show --id 0
func changeRequestCommand(svc recovery.Service) *cli.Command {
	return &cli.Command{
		Name:        "change-request",
		Description: "Manage proposals to replace the wallet spender.",
		Usage:       "Submit, confirm or show spender change requests.",
		Commands: []*cli.Command{
			submitChangeRequestCommand(svc),
			confirmChangeRequestCommand(svc),
			showChangeRequestCommand(svc),
		},
	}
}

func submitChangeRequestCommand(svc recovery.Service) *cli.Command {
	return &cli.Command{
		Name:        "submit",
		Description: "Propose a new spender. The submitting guardian counts as the first confirmation.",
		Usage:       "Submits a spender change request and prints its id.",
		Flags: []cli.Flag{
			fromFlag("Guardian submitting the request"),
			&cli.StringFlag{
				Name:     "new-spender",
				Usage:    "Address proposed as the new spender",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			input := struct {
				From       string `validate:"eth_addr"`
				NewSpender string `validate:"eth_addr"`
			}{
				From:       c.String("from"),
				NewSpender: c.String("new-spender"),
			}
			if err := validateFlags(input); err != nil {
				return err
			}

			id, err := svc.SubmitChangeRequest(ctx, common.HexToAddress(input.From), common.HexToAddress(input.NewSpender))
			if err != nil {
				return err
			}

			return printJSON(c, map[string]uint64{"id": id})
		},
	}
}

func confirmChangeRequestCommand(svc recovery.Service) *cli.Command {
	return &cli.Command{
		Name:        "confirm",
		Description: "Confirm a spender change request. The spender rotates once the threshold is met.",
		Usage:       "Confirms a spender change request and prints it.",
		Flags: []cli.Flag{
			fromFlag("Guardian confirming the request"),
			idFlag("Change request id"),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			input := struct {
				From string `validate:"eth_addr"`
			}{
				From: c.String("from"),
			}
			if err := validateFlags(input); err != nil {
				return err
			}

			id := c.Uint64("id")
			if err := svc.ConfirmChangeRequest(ctx, common.HexToAddress(input.From), id); err != nil {
				return err
			}

			return printChangeRequest(ctx, c, svc, id)
		},
	}
}

func showChangeRequestCommand(svc recovery.Service) *cli.Command {
	return &cli.Command{
		Name:        "show",
		Description: "Show a spender change request.",
		Usage:       "Prints a spender change request.",
		Flags: []cli.Flag{
			idFlag("Change request id"),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return printChangeRequest(ctx, c, svc, c.Uint64("id"))
		},
	}
}

func printChangeRequest(ctx context.Context, c *cli.Command, svc recovery.Service, id uint64) error {
	req, err := svc.ChangeRequest(ctx, id)
	if err != nil {
		return err
	}

	return printJSON(c, req)
}
