package eth

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/hwpark/zrxmatch/pkg/zeroex"
)

const exchangeABI = `[
	{"constant":false,"inputs":[
		{"components":[
			{"name":"makerAddress","type":"address"},
			{"name":"takerAddress","type":"address"},
			{"name":"feeRecipientAddress","type":"address"},
			{"name":"senderAddress","type":"address"},
			{"name":"makerAssetAmount","type":"uint256"},
			{"name":"takerAssetAmount","type":"uint256"},
			{"name":"makerFee","type":"uint256"},
			{"name":"takerFee","type":"uint256"},
			{"name":"expirationTimeSeconds","type":"uint256"},
			{"name":"salt","type":"uint256"},
			{"name":"makerAssetData","type":"bytes"},
			{"name":"takerAssetData","type":"bytes"}
		],"name":"leftOrder","type":"tuple"},
		{"components":[
			{"name":"makerAddress","type":"address"},
			{"name":"takerAddress","type":"address"},
			{"name":"feeRecipientAddress","type":"address"},
			{"name":"senderAddress","type":"address"},
			{"name":"makerAssetAmount","type":"uint256"},
			{"name":"takerAssetAmount","type":"uint256"},
			{"name":"makerFee","type":"uint256"},
			{"name":"takerFee","type":"uint256"},
			{"name":"expirationTimeSeconds","type":"uint256"},
			{"name":"salt","type":"uint256"},
			{"name":"makerAssetData","type":"bytes"},
			{"name":"takerAssetData","type":"bytes"}
		],"name":"rightOrder","type":"tuple"},
		{"name":"leftSignature","type":"bytes"},
		{"name":"rightSignature","type":"bytes"}
	],"name":"matchOrders","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"}
]`

// wireOrder mirrors the Exchange contract's Order tuple. ExchangeAddress is
// deliberately absent: it only scopes the hash, it is not submitted.
type wireOrder struct {
	MakerAddress          common.Address
	TakerAddress          common.Address
	FeeRecipientAddress   common.Address
	SenderAddress         common.Address
	MakerAssetAmount      *big.Int
	TakerAssetAmount      *big.Int
	MakerFee              *big.Int
	TakerFee              *big.Int
	ExpirationTimeSeconds *big.Int
	Salt                  *big.Int
	MakerAssetData        []byte
	TakerAssetData        []byte
}

func toWireOrder(o *zeroex.Order) wireOrder {
	return wireOrder{
		MakerAddress:          o.MakerAddress,
		TakerAddress:          o.TakerAddress,
		FeeRecipientAddress:   o.FeeRecipientAddress,
		SenderAddress:         o.SenderAddress,
		MakerAssetAmount:      o.MakerAssetAmount,
		TakerAssetAmount:      o.TakerAssetAmount,
		MakerFee:              o.MakerFee,
		TakerFee:              o.TakerFee,
		ExpirationTimeSeconds: o.ExpirationTimeSeconds,
		Salt:                  o.Salt,
		MakerAssetData:        o.MakerAssetData,
		TakerAssetData:        o.TakerAssetData,
	}
}

// Exchange is the v2 Exchange contract client.
type Exchange struct {
	addr     common.Address
	contract *bind.BoundContract
}

func NewExchange(addr common.Address, provider *Provider) (*Exchange, error) {
	parsed, err := abi.JSON(strings.NewReader(exchangeABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse Exchange ABI: %w", err)
	}
	client := provider.Client()
	return &Exchange{
		addr:     addr,
		contract: bind.NewBoundContract(addr, parsed, client, client, client),
	}, nil
}

// Address returns the exchange contract address.
func (e *Exchange) Address() common.Address {
	return e.addr
}

// MatchOrders submits one transaction crossing the two complementary signed
// orders atomically. The sender (opts.From) takes the spread; it must be
// distinct from either maker.
func (e *Exchange) MatchOrders(opts *bind.TransactOpts, left, right *zeroex.SignedOrder) (*types.Transaction, error) {
	tx, err := e.contract.Transact(opts, "matchOrders",
		toWireOrder(&left.Order), toWireOrder(&right.Order),
		left.Signature, right.Signature)
	if err != nil {
		return nil, fmt.Errorf("failed to submit matchOrders: %w", err)
	}
	return tx, nil
}
