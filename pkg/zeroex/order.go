package zeroex

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// NullAddress is the sentinel for "any taker" / "any sender" / "no fee recipient".
	NullAddress = common.Address{}

	// UnlimitedAllowance is 2^256 - 1, the maximum ERC-20 approval amount.
	UnlimitedAllowance = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	// Zero is the zero amount, used for fee fields in the demo orders.
	Zero = big.NewInt(0)
)

// Order is a signed offer to trade one asset for another through the
// exchange contract. Field layout follows the v2 Exchange Order struct;
// ExchangeAddress is not part of the struct on the wire but binds the
// hash to one exchange deployment via the EIP-712 domain.
//
// An Order is immutable once hashed and signed: changing any field
// invalidates the signature.
type Order struct {
	ExchangeAddress       common.Address
	MakerAddress          common.Address
	TakerAddress          common.Address // NullAddress = any taker
	SenderAddress         common.Address // NullAddress = any sender
	FeeRecipientAddress   common.Address
	MakerAssetAmount      *big.Int
	TakerAssetAmount      *big.Int
	MakerFee              *big.Int
	TakerFee              *big.Int
	ExpirationTimeSeconds *big.Int
	Salt                  *big.Int
	MakerAssetData        []byte
	TakerAssetData        []byte
}

// SignedOrder is an Order plus the maker's signature over its canonical
// hash, tagged with the signature scheme used (last signature byte).
type SignedOrder struct {
	Order
	Signature []byte
}

// Validate rejects orders with missing amounts or asset data before they
// reach hashing. The exchange contract enforces the same conditions with a
// revert, this surfaces them locally with a usable error.
func (o *Order) Validate() error {
	if o.MakerAddress == NullAddress {
		return fmt.Errorf("order: maker address is unset")
	}
	if o.MakerAssetAmount == nil || o.MakerAssetAmount.Sign() <= 0 {
		return fmt.Errorf("order: maker asset amount must be positive")
	}
	if o.TakerAssetAmount == nil || o.TakerAssetAmount.Sign() <= 0 {
		return fmt.Errorf("order: taker asset amount must be positive")
	}
	if len(o.MakerAssetData) == 0 || len(o.TakerAssetData) == 0 {
		return fmt.Errorf("order: asset data is unset")
	}
	if o.MakerFee == nil || o.TakerFee == nil {
		return fmt.Errorf("order: fee fields are unset")
	}
	if o.Salt == nil {
		return fmt.Errorf("order: salt is unset")
	}
	if o.ExpirationTimeSeconds == nil || o.ExpirationTimeSeconds.Sign() <= 0 {
		return fmt.Errorf("order: expiration is unset")
	}
	return nil
}

// Crosses reports whether o and other form a matchable pair: each order's
// taker asset must be the other's maker asset, and the combined prices must
// allow both makers to be filled at or better than their stated rate, i.e.
// o.makerAmount * other.makerAmount >= o.takerAmount * other.takerAmount.
func (o *Order) Crosses(other *Order) bool {
	if !bytes.Equal(o.MakerAssetData, other.TakerAssetData) ||
		!bytes.Equal(o.TakerAssetData, other.MakerAssetData) {
		return false
	}
	left := new(big.Int).Mul(o.MakerAssetAmount, other.MakerAssetAmount)
	right := new(big.Int).Mul(o.TakerAssetAmount, other.TakerAssetAmount)
	return left.Cmp(right) >= 0
}
