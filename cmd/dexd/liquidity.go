package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/vulpemventures/dexd/internal/core/domain"
)

var provide = cli.Command{
	Name:  "provide",
	Usage: "deposit liquidity into a pool in exchange for receipt tokens",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "asset_a",
			Usage: "one asset of the pair",
		},
		&cli.Uint64Flag{
			Name:  "amount_a",
			Usage: "the deposited amount of asset_a",
		},
		&cli.StringFlag{
			Name:  "asset_b",
			Usage: "the other asset of the pair",
		},
		&cli.Uint64Flag{
			Name:  "amount_b",
			Usage: "the deposited amount of asset_b",
		},
		&cli.StringFlag{
			Name:  "lp_token",
			Usage: "the id of the receipt token of the pool",
		},
		&cli.StringFlag{
			Name:  "account",
			Usage: "the account providing the liquidity",
		},
	},
	Action: provideAction,
}

var remove = cli.Command{
	Name:  "remove",
	Usage: "burn receipt tokens in exchange for the underlying liquidity",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "asset_a",
			Usage: "one asset of the pair",
		},
		&cli.StringFlag{
			Name:  "asset_b",
			Usage: "the other asset of the pair",
		},
		&cli.Uint64Flag{
			Name:  "lp_tokens",
			Usage: "the amount of receipt tokens to burn",
		},
		&cli.StringFlag{
			Name:  "account",
			Usage: "the account removing the liquidity",
		},
	},
	Action: removeAction,
}

func provideAction(ctx *cli.Context) error {
	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	provision, err := domain.NewAssetAmountPair(
		domain.AssetAmount{
			Asset:  ctx.String("asset_a"),
			Amount: ctx.Uint64("amount_a"),
		},
		domain.AssetAmount{
			Asset:  ctx.String("asset_b"),
			Amount: ctx.Uint64("amount_b"),
		},
	)
	if err != nil {
		return err
	}

	lpTokens, err := svc.ProvideLiquidity(
		ctx.Context, ctx.String("account"), provision, ctx.String("lp_token"),
	)
	if err != nil {
		return err
	}

	fmt.Printf("minted %d lp tokens\n", lpTokens)
	return nil
}

func removeAction(ctx *cli.Context) error {
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

	amounts, err := svc.RemoveLiquidity(
		ctx.Context, ctx.String("account"), pair, ctx.Uint64("lp_tokens"),
	)
	if err != nil {
		return err
	}

	fmt.Printf(
		"released %d %s and %d %s\n",
		amounts.AmountX.Amount, amounts.AmountX.Asset,
		amounts.AmountY.Amount, amounts.AmountY.Asset,
	)
	return nil
}
