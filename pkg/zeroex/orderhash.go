package zeroex

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// EIP-712 domain of the v2 Exchange. Unlike later protocol versions the v2
// domain carries no chain id; replay protection across deployments comes
// from the verifying contract address alone.
const (
	eip712DomainName    = "0x Protocol"
	eip712DomainVersion = "2"
)

var (
	// keccak256 of the v2 domain type definition (name, version,
	// verifyingContract; no chainId).
	eip712DomainTypeHash = crypto.Keccak256Hash(
		[]byte("EIP712Domain(string name,string version,address verifyingContract)"))

	// keccak256 of the Order type definition. Field order must match the
	// Exchange contract exactly or hashes diverge from on-chain ones.
	orderTypeHash = crypto.Keccak256Hash([]byte(
		"Order(" +
			"address makerAddress," +
			"address takerAddress," +
			"address feeRecipientAddress," +
			"address senderAddress," +
			"uint256 makerAssetAmount," +
			"uint256 takerAssetAmount," +
			"uint256 makerFee," +
			"uint256 takerFee," +
			"uint256 expirationTimeSeconds," +
			"uint256 salt," +
			"bytes makerAssetData," +
			"bytes takerAssetData" +
			")"))
)

// HashOrder computes the canonical EIP-712 hash of an order:
// keccak256("\x19\x01" || domainSeparator || hashStruct(order)).
// The result is deterministic over the order's fields; the exchange
// contract computes the identical digest when verifying signatures.
func HashOrder(order *Order) (common.Hash, error) {
	if err := order.Validate(); err != nil {
		return common.Hash{}, fmt.Errorf("failed to hash order: %w", err)
	}

	domainSeparator := crypto.Keccak256(
		eip712DomainTypeHash.Bytes(),
		crypto.Keccak256([]byte(eip712DomainName)),
		crypto.Keccak256([]byte(eip712DomainVersion)),
		common.LeftPadBytes(order.ExchangeAddress.Bytes(), 32),
	)

	// hashStruct: static fields are 32-byte words, dynamic bytes fields
	// contribute the keccak of their contents.
	structHash := crypto.Keccak256(
		orderTypeHash.Bytes(),
		common.LeftPadBytes(order.MakerAddress.Bytes(), 32),
		common.LeftPadBytes(order.TakerAddress.Bytes(), 32),
		common.LeftPadBytes(order.FeeRecipientAddress.Bytes(), 32),
		common.LeftPadBytes(order.SenderAddress.Bytes(), 32),
		common.LeftPadBytes(order.MakerAssetAmount.Bytes(), 32),
		common.LeftPadBytes(order.TakerAssetAmount.Bytes(), 32),
		common.LeftPadBytes(order.MakerFee.Bytes(), 32),
		common.LeftPadBytes(order.TakerFee.Bytes(), 32),
		common.LeftPadBytes(order.ExpirationTimeSeconds.Bytes(), 32),
		common.LeftPadBytes(order.Salt.Bytes(), 32),
		crypto.Keccak256(order.MakerAssetData),
		crypto.Keccak256(order.TakerAssetData),
	)

	digest := crypto.Keccak256Hash([]byte("\x19\x01"), domainSeparator, structHash)
	return digest, nil
}
