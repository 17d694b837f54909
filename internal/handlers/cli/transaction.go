package cli

import (
	"context"

	"github.com/gabapcia/recoverywallet/internal/recovery"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v3"
)

// transactionCommand groups the transaction subcommands.
//
// Usage example:
//
//	recoverywallet tx submit --from 0xSPENDER --to 0xDEST --amount 1000 --data 0xcafe
//	recoverywallet tx confirm --from 0xGUARDIAN --id 0
//	recoverywallet tx execute --from 0xSPENDER --id 0
//	recoverywallet tx show --id 0
func transactionCommand(svc recovery.Service) *cli.Command {
	return &cli.Command{
		Name:        "tx",
		Description: "Manage outbound transactions proposed by the spender.",
		Usage:       "Submit, confirm, execute or show transactions.",
		Commands: []*cli.Command{
			submitTransactionCommand(svc),
			confirmTransactionCommand(svc),
			executeTransactionCommand(svc),
			showTransactionCommand(svc),
		},
	}
}

func submitTransactionCommand(svc recovery.Service) *cli.Command {
	return &cli.Command{
		Name:        "submit",
		Description: "Propose an outbound call. Only the current spender may submit.",
		Usage:       "Submits a transaction and prints its id.",
		Flags: []cli.Flag{
			fromFlag("Current spender"),
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Destination address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "amount",
				Usage: "Amount to send, in decimal or 0x-prefixed hexadecimal",
				Value: "0",
			},
			&cli.StringFlag{
				Name:  "data",
				Usage: "Call payload as 0x-prefixed hexadecimal",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			input := struct {
				From   string `validate:"eth_addr"`
				To     string `validate:"eth_addr"`
				Amount string `validate:"amount"`
			}{
				From:   c.String("from"),
				To:     c.String("to"),
				Amount: c.String("amount"),
			}
			if err := validateFlags(input); err != nil {
				return err
			}

			amount, err := recovery.ParseAmount(input.Amount)
			if err != nil {
				return err
			}

			var payload []byte
			if data := c.String("data"); data != "" {
				if payload, err = hexutil.Decode(data); err != nil {
					return err
				}
			}

			id, err := svc.SubmitTransaction(ctx, common.HexToAddress(input.From), common.HexToAddress(input.To), amount, payload)
			if err != nil {
				return err
			}

			return printJSON(c, map[string]uint64{"id": id})
		},
	}
}

func confirmTransactionCommand(svc recovery.Service) *cli.Command {
	return &cli.Command{
		Name:        "confirm",
		Description: "Confirm a transaction as a guardian.",
		Usage:       "Confirms a transaction and prints it.",
		Flags: []cli.Flag{
			fromFlag("Guardian confirming the transaction"),
			idFlag("Transaction id"),
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
			if err := svc.ConfirmTransaction(ctx, common.HexToAddress(input.From), id); err != nil {
				return err
			}

			return printTransaction(ctx, c, svc, id)
		},
	}
}

func executeTransactionCommand(svc recovery.Service) *cli.Command {
	return &cli.Command{
		Name:        "execute",
		Description: "Perform the outbound call of a sufficiently confirmed transaction.",
		Usage:       "Executes a transaction and prints it with its execution reference.",
		Flags: []cli.Flag{
			fromFlag("Current spender"),
			idFlag("Transaction id"),
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
			if err := svc.ExecuteTransaction(ctx, common.HexToAddress(input.From), id); err != nil {
				return err
			}

			return printTransaction(ctx, c, svc, id)
		},
	}
}

func showTransactionCommand(svc recovery.Service) *cli.Command {
	return &cli.Command{
		Name:        "show",
		Description: "Show a transaction.",
		Usage:       "Prints a transaction.",
		Flags: []cli.Flag{
			idFlag("Transaction id"),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return printTransaction(ctx, c, svc, c.Uint64("id"))
		},
	}
}

func printTransaction(ctx context.Context, c *cli.Command, svc recovery.Service, id uint64) error {
	tx, err := svc.Transaction(ctx, id)
	if err != nil {
		return err
	}

	return printJSON(c, tx)
}
