package eth

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const wethABI = `[
	{"constant":false,"inputs":[],"name":"deposit","outputs":[],"payable":true,"stateMutability":"payable","type":"function"},
	{"constant":false,"inputs":[{"name":"wad","type":"uint256"}],"name":"withdraw","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"}
]`

// WETH is the wrapped-native-token client. It embeds the plain ERC20
// surface and adds the payable deposit / withdraw pair of WETH9.
type WETH struct {
	*ERC20
	contract *bind.BoundContract
}

func NewWETH(addr common.Address, provider *Provider) (*WETH, error) {
	erc20, err := NewERC20(addr, provider)
	if err != nil {
		return nil, err
	}
	parsed, err := abi.JSON(strings.NewReader(wethABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse WETH ABI: %w", err)
	}
	client := provider.Client()
	return &WETH{
		ERC20:    erc20,
		contract: bind.NewBoundContract(addr, parsed, client, client, client),
	}, nil
}

// Deposit wraps amount of native currency into WETH for the caller.
func (t *WETH) Deposit(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error) {
	depositOpts := *opts
	depositOpts.Value = amount
	tx, err := t.contract.Transact(&depositOpts, "deposit")
	if err != nil {
		return nil, fmt.Errorf("failed to deposit into %s: %w", t.Address().Hex(), err)
	}
	return tx, nil
}

// Withdraw unwraps amount of WETH back to native currency.
func (t *WETH) Withdraw(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error) {
	tx, err := t.contract.Transact(opts, "withdraw", amount)
	if err != nil {
		return nil, fmt.Errorf("failed to withdraw from %s: %w", t.Address().Hex(), err)
	}
	return tx, nil
}
