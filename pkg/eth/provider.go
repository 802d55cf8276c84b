package eth

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/hwpark/zrxmatch/pkg/crypto"
)

// Provider wraps the RPC connection to a chain node. It is constructed once
// and passed to every contract client; Close is safe to call more than once
// and from any exit path.
type Provider struct {
	client    *ethclient.Client
	chainID   *big.Int
	gasPrice  *big.Int
	gasLimit  uint64
	closeOnce sync.Once
}

// Dial connects to the node at rpcURL. gasPrice and gasLimit become the
// defaults applied to every transaction built through TxOpts.
func Dial(ctx context.Context, rpcURL string, chainID *big.Int, gasPrice *big.Int, gasLimit uint64) (*Provider, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", rpcURL, err)
	}
	return &Provider{
		client:   client,
		chainID:  chainID,
		gasPrice: gasPrice,
		gasLimit: gasLimit,
	}, nil
}

// Client exposes the underlying ethclient for contract bindings.
func (p *Provider) Client() *ethclient.Client {
	return p.client
}

// ChainID returns the configured chain id.
func (p *Provider) ChainID() *big.Int {
	return p.chainID
}

// Close tears down the RPC connection. Idempotent.
func (p *Provider) Close() {
	p.closeOnce.Do(func() {
		p.client.Close()
	})
}

// TxOpts builds transact options for the given signer with the provider's
// default gas price and limit.
func (p *Provider) TxOpts(ctx context.Context, signer *crypto.Signer) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(signer.PrivateKey(), p.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transactor for %s: %w", signer.Address().Hex(), err)
	}
	opts.Context = ctx
	opts.GasPrice = p.gasPrice
	opts.GasLimit = p.gasLimit
	return opts, nil
}

// WaitMined blocks until the transaction is mined and returns its receipt.
// A mined-but-reverted transaction is reported as an error.
func (p *Provider) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, p.client, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for tx %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("tx %s reverted in block %d", tx.Hash().Hex(), receipt.BlockNumber.Uint64())
	}
	return receipt, nil
}
