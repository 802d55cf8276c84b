package eth

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwpark/zrxmatch/pkg/zeroex"
)

func demoOrder(maker common.Address) *zeroex.Order {
	return &zeroex.Order{
		ExchangeAddress:       common.HexToAddress("0x48bacb9266a570d521063ef5dd96e61686dbe788"),
		MakerAddress:          maker,
		TakerAddress:          zeroex.NullAddress,
		SenderAddress:         zeroex.NullAddress,
		FeeRecipientAddress:   zeroex.NullAddress,
		MakerAssetAmount:      big.NewInt(10),
		TakerAssetAmount:      big.NewInt(4),
		MakerFee:              zeroex.Zero,
		TakerFee:              zeroex.Zero,
		ExpirationTimeSeconds: big.NewInt(1_800_000_000),
		Salt:                  big.NewInt(7),
		MakerAssetData:        zeroex.EncodeERC20AssetData(common.HexToAddress("0x871dd7c2b4b25e1aa18728e9d5f2af4c4e431f5c")),
		TakerAssetData:        zeroex.EncodeERC20AssetData(common.HexToAddress("0x0b1ba0af832d7c05fd64161e0db78e85978e8082")),
	}
}

func TestContractABIsParse(t *testing.T) {
	for name, raw := range map[string]string{
		"erc20":    erc20ABI,
		"weth":     wethABI,
		"exchange": exchangeABI,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := abi.JSON(strings.NewReader(raw))
			assert.NoError(t, err)
		})
	}
}

func TestMatchOrdersCallDataPacks(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(exchangeABI))
	require.NoError(t, err)

	method, ok := parsed.Methods["matchOrders"]
	require.True(t, ok)
	assert.Len(t, method.Inputs, 4)

	left := demoOrder(common.HexToAddress("0x5409ed021d9299bf6814279a6a1411a7e866a631"))
	right := demoOrder(common.HexToAddress("0x6ecbe1db9ef729cbe972c83fb886247691fb6beb"))
	right.MakerAssetData, right.TakerAssetData = right.TakerAssetData, right.MakerAssetData
	sig := make([]byte, 66)

	data, err := parsed.Pack("matchOrders", toWireOrder(left), toWireOrder(right), sig, sig)
	require.NoError(t, err, "wire struct must map onto the order tuple")
	assert.Equal(t, method.ID, data[:4], "selector prefix")
}

func TestToWireOrderDropsExchangeAddressOnly(t *testing.T) {
	order := demoOrder(common.HexToAddress("0x5409ed021d9299bf6814279a6a1411a7e866a631"))
	wire := toWireOrder(order)

	assert.Equal(t, order.MakerAddress, wire.MakerAddress)
	assert.Equal(t, order.TakerAddress, wire.TakerAddress)
	assert.Equal(t, order.FeeRecipientAddress, wire.FeeRecipientAddress)
	assert.Equal(t, order.SenderAddress, wire.SenderAddress)
	assert.Equal(t, order.MakerAssetAmount, wire.MakerAssetAmount)
	assert.Equal(t, order.TakerAssetAmount, wire.TakerAssetAmount)
	assert.Equal(t, order.MakerFee, wire.MakerFee)
	assert.Equal(t, order.TakerFee, wire.TakerFee)
	assert.Equal(t, order.ExpirationTimeSeconds, wire.ExpirationTimeSeconds)
	assert.Equal(t, order.Salt, wire.Salt)
	assert.Equal(t, order.MakerAssetData, wire.MakerAssetData)
	assert.Equal(t, order.TakerAssetData, wire.TakerAssetData)
}
