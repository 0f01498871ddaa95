package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/dexd/internal/core/domain"
)

const (
	assetX = "USDT"
	assetY = "XBT"
)

func TestNewAssetPairIsOrderIndependent(t *testing.T) {
	t.Parallel()

	pair, err := domain.NewAssetPair(assetX, assetY)
	require.NoError(t, err)

	swapped, err := domain.NewAssetPair(assetY, assetX)
	require.NoError(t, err)

	require.Equal(t, pair, swapped)
	require.Equal(t, assetX, pair.AssetX)
	require.Equal(t, assetY, pair.AssetY)
	require.Equal(t, "USDT/XBT", pair.String())
}

func TestNewAssetPairWithSameAsset(t *testing.T) {
	t.Parallel()

	_, err := domain.NewAssetPair(assetX, assetX)
	require.ErrorIs(t, err, domain.ErrInvalidPair)
}

func TestNewAssetAmountPair(t *testing.T) {
	t.Parallel()

	pair, err := domain.NewAssetAmountPair(
		domain.AssetAmount{Asset: assetY, Amount: 200},
		domain.AssetAmount{Asset: assetX, Amount: 100},
	)
	require.NoError(t, err)

	// Amounts follow their assets into canonical order.
	require.Equal(t, assetX, pair.AmountX.Asset)
	require.Equal(t, uint64(100), pair.AmountX.Amount)
	require.Equal(t, assetY, pair.AmountY.Asset)
	require.Equal(t, uint64(200), pair.AmountY.Amount)

	id, err := pair.Pair()
	require.NoError(t, err)
	require.Equal(t, domain.AssetPair{AssetX: assetX, AssetY: assetY}, id)
}

func TestNewAssetAmountPairWithSameAsset(t *testing.T) {
	t.Parallel()

	_, err := domain.NewAssetAmountPair(
		domain.AssetAmount{Asset: assetX, Amount: 100},
		domain.AssetAmount{Asset: assetX, Amount: 200},
	)
	require.ErrorIs(t, err, domain.ErrInvalidPair)
}
