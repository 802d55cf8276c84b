package zeroex

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *Order {
	return &Order{
		ExchangeAddress:       common.HexToAddress("0x48bacb9266a570d521063ef5dd96e61686dbe788"),
		MakerAddress:          common.HexToAddress("0x5409ed021d9299bf6814279a6a1411a7e866a631"),
		TakerAddress:          NullAddress,
		SenderAddress:         NullAddress,
		FeeRecipientAddress:   NullAddress,
		MakerAssetAmount:      big.NewInt(10),
		TakerAssetAmount:      big.NewInt(4),
		MakerFee:              Zero,
		TakerFee:              Zero,
		ExpirationTimeSeconds: big.NewInt(1_700_000_000),
		Salt:                  big.NewInt(12345),
		MakerAssetData:        EncodeERC20AssetData(common.HexToAddress("0x871dd7c2b4b25e1aa18728e9d5f2af4c4e431f5c")),
		TakerAssetData:        EncodeERC20AssetData(common.HexToAddress("0x0b1ba0af832d7c05fd64161e0db78e85978e8082")),
	}
}

func TestHashOrderDeterministic(t *testing.T) {
	order := testOrder()

	h1, err := HashOrder(order)
	require.NoError(t, err)
	h2, err := HashOrder(order)
	require.NoError(t, err)

	assert.Equal(t, h1, h2, "hashing an unmodified order must be deterministic")
	assert.NotEqual(t, common.Hash{}, h1)
}

func TestHashOrderFieldSensitivity(t *testing.T) {
	base := testOrder()
	baseHash, err := HashOrder(base)
	require.NoError(t, err)

	mutations := map[string]func(o *Order){
		"salt":       func(o *Order) { o.Salt = big.NewInt(12346) },
		"maker":      func(o *Order) { o.MakerAddress = common.HexToAddress("0x6ecbe1db9ef729cbe972c83fb886247691fb6beb") },
		"amount":     func(o *Order) { o.MakerAssetAmount = big.NewInt(11) },
		"expiration": func(o *Order) { o.ExpirationTimeSeconds = big.NewInt(1_700_000_001) },
		"exchange":   func(o *Order) { o.ExchangeAddress = common.HexToAddress("0x1dc4c1cefef38a777b15aa20260a54e584b16c48") },
		"assetData":  func(o *Order) { o.TakerAssetData = EncodeERC20AssetData(common.HexToAddress("0x34d402f14d58e001d8efbe6585051bf9706aa064")) },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			order := testOrder()
			mutate(order)
			h, err := HashOrder(order)
			require.NoError(t, err)
			assert.NotEqual(t, baseHash, h, "changing %s must change the hash", name)
		})
	}
}

func TestHashOrderRejectsInvalid(t *testing.T) {
	order := testOrder()
	order.MakerAssetAmount = Zero

	_, err := HashOrder(order)
	assert.Error(t, err)
}

func TestOrderCrosses(t *testing.T) {
	left := testOrder()

	right := testOrder()
	right.MakerAddress = common.HexToAddress("0x6ecbe1db9ef729cbe972c83fb886247691fb6beb")
	right.MakerAssetData = left.TakerAssetData
	right.TakerAssetData = left.MakerAssetData
	right.MakerAssetAmount = left.TakerAssetAmount // 4
	right.TakerAssetAmount = big.NewInt(2)

	assert.True(t, left.Crosses(right))

	// Same assets but right maker demands more than left offers.
	right.TakerAssetAmount = big.NewInt(11)
	assert.False(t, left.Crosses(right))

	// Asset data does not mirror.
	right.TakerAssetAmount = big.NewInt(2)
	right.MakerAssetData = left.MakerAssetData
	assert.False(t, left.Crosses(right))
}
