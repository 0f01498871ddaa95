package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/vulpemventures/dexd/internal/core/domain"
)

var price = cli.Command{
	Name:  "price",
	Usage: "get the spot price of an asset in a pool",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "asset_a",
			Usage: "one asset of the pair",
		},
		&cli.StringFlag{
			Name:  "asset_b",
			Usage: "the other asset of the pair",
		},
		&cli.StringFlag{
			Name:  "asset",
			Usage: "the asset to price",
		},
	},
	Action: priceAction,
}

var balance = cli.Command{
	Name:  "balance",
	Usage: "get the balance of an account for an asset",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "asset",
			Usage: "the asset to look up",
		},
		&cli.StringFlag{
			Name:  "account",
			Usage: "the account to look up",
		},
	},
	Action: balanceAction,
}

func priceAction(ctx *cli.Context) error {
	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	pair, err := domain.NewAssetPair(
		ctx.String("asset_a"), ctx.String("asset_b"),
	)
	if err != nil {
		return err
	}

	spotPrice, err := svc.GetAssetPrice(ctx.Context, pair, ctx.String("asset"))
	if err != nil {
		return err
	}

	fmt.Println(spotPrice.String())
	return nil
}

func balanceAction(ctx *cli.Context) error {
	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	amount, err := svc.GetBalance(
		ctx.Context, ctx.String("asset"), ctx.String("account"),
	)
	if err != nil {
		return err
	}

	fmt.Println(amount)
	return nil
}
