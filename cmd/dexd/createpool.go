package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/vulpemventures/dexd/internal/core/domain"
)

var createpool = cli.Command{
	Name:  "createpool",
	Usage: "create a new liquidity pool for a pair of assets",
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
			Name:  "lp_token",
			Usage: "the id of the receipt token minted to liquidity providers",
		},
		&cli.StringFlag{
			Name:  "account",
			Usage: "the account creating the pool",
		},
	},
	Action: createPoolAction,
}

var listpools = cli.Command{
	Name:   "listpools",
	Usage:  "list all the registered pools and their reserves",
	Action: listPoolsAction,
}

func createPoolAction(ctx *cli.Context) error {
	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.CreatePool(
		ctx.Context,
		ctx.String("account"),
		ctx.String("asset_a"), ctx.String("asset_b"),
		ctx.String("lp_token"),
	); err != nil {
		return err
	}

	fmt.Println("pool is created")
	return nil
}

func listPoolsAction(ctx *cli.Context) error {
	svc, cleanup, err := getService()
	if err != nil {
		return err
	}
	defer cleanup()

	pools, err := svc.ListPools(ctx.Context)
	if err != nil {
		return err
	}

	for _, pool := range pools {
		printPool(pool)
	}
	return nil
}

func printPool(pool domain.LiquidityPool) {
	fmt.Printf(
		"%s\treserves: %d/%d\tliquidity: %d\tlp token: %s\n",
		pool.Pair(),
		pool.Reserves.AmountX.Amount, pool.Reserves.AmountY.Amount,
		pool.TotalLiquidity, pool.LpTokenID,
	)
}
