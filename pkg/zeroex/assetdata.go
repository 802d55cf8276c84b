package zeroex

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// erc20ProxyID is the 4-byte selector of ERC20Token(address), the asset
// proxy that moves plain ERC-20 tokens.
var erc20ProxyID = []byte{0xf4, 0x72, 0x61, 0xb0}

// EncodeERC20AssetData encodes a token contract address into the asset-data
// byte string the exchange routes to the ERC-20 asset proxy: the proxy id
// followed by the address left-padded to 32 bytes.
func EncodeERC20AssetData(token common.Address) []byte {
	data := make([]byte, 0, 36)
	data = append(data, erc20ProxyID...)
	data = append(data, common.LeftPadBytes(token.Bytes(), 32)...)
	return data
}

// DecodeERC20AssetData extracts the token address from ERC-20 asset data.
func DecodeERC20AssetData(assetData []byte) (common.Address, error) {
	if len(assetData) != 36 {
		return common.Address{}, fmt.Errorf("invalid ERC20 asset data length: %d", len(assetData))
	}
	if !bytes.Equal(assetData[:4], erc20ProxyID) {
		return common.Address{}, fmt.Errorf("invalid asset proxy id: 0x%x", assetData[:4])
	}
	if !bytes.Equal(assetData[4:16], make([]byte, 12)) {
		return common.Address{}, fmt.Errorf("asset data address padding is not zero")
	}
	return common.BytesToAddress(assetData[16:]), nil
}
