package cli

import (
	"context"

	"github.com/gabapcia/recoverywallet/internal/recovery"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v3"
)

type walletStatus struct {
	Spender            common.Address  `json:"spender"`
	Balance            *uint256.Int    `json:"balance"`
	ChangeRequestCount uint64          `json:"changeRequestCount"`
	TransactionCount   uint64          `json:"transactionCount"`
	Policy             recovery.Policy `json:"policy"`
}

// receiveCommand returns a CLI command crediting a deposit to the wallet.
//
// Usage example:
//
//	recoverywallet receive --from 0xSENDER --amount 1000
func receiveCommand(svc recovery.Service) *cli.Command {
	return &cli.Command{
		Name:        "receive",
		Description: "Credit a deposit to the wallet. Any sender may deposit.",
		Usage:       "Records a deposit and prints the new balance.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "Sender of the deposit",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Amount received, in decimal or 0x-prefixed hexadecimal",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			input := struct {
				From   string `validate:"eth_addr"`
				Amount string `validate:"amount"`
			}{
				From:   c.String("from"),
				Amount: c.String("amount"),
			}
			if err := validateFlags(input); err != nil {
				return err
			}

			amount, err := recovery.ParseAmount(input.Amount)
			if err != nil {
				return err
			}

			if err := svc.Receive(ctx, common.HexToAddress(input.From), amount); err != nil {
				return err
			}

			return printJSON(c, map[string]*uint256.Int{"balance": svc.Balance(ctx)})
		},
	}
}

// statusCommand returns a CLI command printing the wallet state.
//
// Usage example:
//
//	recoverywallet status
func statusCommand(svc recovery.Service) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Show the current spender, balance, item counts and guardian policy.",
		Usage:       "Prints the wallet status.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return printJSON(c, walletStatus{
				Spender:            svc.CurrentSpender(ctx),
				Balance:            svc.Balance(ctx),
				ChangeRequestCount: svc.ChangeRequestCount(ctx),
				TransactionCount:   svc.TransactionCount(ctx),
				Policy:             svc.Policy(ctx),
			})
		},
	}
}
