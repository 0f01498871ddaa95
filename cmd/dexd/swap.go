package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/vulpemventures/dexd/internal/core/domain"
)

var swap = cli.Command{
	Name:  "swap",
	Usage: "trade one asset of a pool for the other",
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
			Name:  "give_asset",
			Usage: "the asset sent to the pool, for an exact-input trade",
		},
		&cli.Uint64Flag{
			Name:  "give_amount",
			Usage: "the exact amount sent to the pool",
		},
		&cli.Uint64Flag{
			Name:  "min_take",
			Usage: "the minimum accepted amount received back",
		},
		&cli.StringFlag{
			Name:  "take_asset",
			Usage: "the asset received from the pool, for an exact-output trade",
		},
		&cli.Uint64Flag{
			Name:  "take_amount",
			Usage: "the exact amount received from the pool",
		},
		&cli.Uint64Flag{
			Name:  "max_give",
			Usage: "the maximum accepted amount sent to the pool",
		},
		&cli.StringFlag{
			Name:  "account",
			Usage: "the account trading against the pool",
		},
	},
	Action: swapAction,
}

func swapAction(ctx *cli.Context) error {
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
	account := ctx.String("account")

	if giveAsset := ctx.String("give_asset"); giveAsset != "" {
		take, err := svc.SwapLimitTake(
			ctx.Context, account,
			domain.AssetAmount{
				Asset:  giveAsset,
				Amount: ctx.Uint64("give_amount"),
			},
			ctx.Uint64("min_take"),
			pair,
		)
		if err != nil {
			return err
		}
		fmt.Printf("received %d %s\n", take.Amount, take.Asset)
		return nil
	}

	give, err := svc.SwapLimitGive(
		ctx.Context, account,
		domain.AssetAmount{
			Asset:  ctx.String("take_asset"),
			Amount: ctx.Uint64("take_amount"),
		},
		ctx.Uint64("max_give"),
		pair,
	)
	if err != nil {
		return err
	}
	fmt.Printf("sent %d %s\n", give.Amount, give.Asset)
	return nil
}
