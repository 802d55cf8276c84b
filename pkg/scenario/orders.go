package scenario

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hwpark/zrxmatch/params"
	"github.com/hwpark/zrxmatch/pkg/crypto"
	"github.com/hwpark/zrxmatch/pkg/zeroex"
)

// BuildCrossedOrders constructs the complementary order pair:
//
//	left:  leftMaker sells MakerAssetAmount ZRX for TakerAssetAmount WETH
//	right: rightMaker sells TakerAssetAmount WETH for RightTakerAssetAmount ZRX
//
// The right order mirrors the left's asset data and reuses its taker amount
// as maker amount, so the exchange can cross the two in one transaction.
// Both orders share one expiration and get independent random salts.
func BuildCrossedOrders(cfg params.Config, leftMaker, rightMaker common.Address, expiration time.Time) (*zeroex.Order, *zeroex.Order, error) {
	zrxAssetData := zeroex.EncodeERC20AssetData(cfg.Chain.ZRXToken)
	wethAssetData := zeroex.EncodeERC20AssetData(cfg.Chain.WETHToken)
	expirationSeconds := big.NewInt(expiration.Unix())

	leftSalt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, nil, err
	}
	rightSalt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, nil, err
	}

	left := &zeroex.Order{
		ExchangeAddress:       cfg.Chain.Exchange,
		MakerAddress:          leftMaker,
		TakerAddress:          zeroex.NullAddress, // any taker
		SenderAddress:         zeroex.NullAddress,
		FeeRecipientAddress:   zeroex.NullAddress,
		MakerAssetAmount:      cfg.Trade.MakerAssetAmount,
		TakerAssetAmount:      cfg.Trade.TakerAssetAmount,
		MakerFee:              zeroex.Zero,
		TakerFee:              zeroex.Zero,
		ExpirationTimeSeconds: expirationSeconds,
		Salt:                  leftSalt,
		MakerAssetData:        zrxAssetData,
		TakerAssetData:        wethAssetData,
	}

	right := &zeroex.Order{
		ExchangeAddress:       cfg.Chain.Exchange,
		MakerAddress:          rightMaker,
		TakerAddress:          zeroex.NullAddress,
		SenderAddress:         zeroex.NullAddress,
		FeeRecipientAddress:   zeroex.NullAddress,
		MakerAssetAmount:      cfg.Trade.TakerAssetAmount,
		TakerAssetAmount:      cfg.Trade.RightTakerAssetAmount,
		MakerFee:              zeroex.Zero,
		TakerFee:              zeroex.Zero,
		ExpirationTimeSeconds: expirationSeconds,
		Salt:                  rightSalt,
		MakerAssetData:        wethAssetData,
		TakerAssetData:        zrxAssetData,
	}

	if !left.Crosses(right) {
		return nil, nil, fmt.Errorf("configured amounts do not produce a crossable pair")
	}
	return left, right, nil
}
