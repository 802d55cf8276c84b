package eth

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwpark/zrxmatch/pkg/crypto"
)

// HTTP dialing is lazy, so a provider can be constructed without a node
// listening; nothing here sends a request.
func dialTestProvider(t *testing.T) *Provider {
	t.Helper()
	provider, err := Dial(context.Background(), "http://127.0.0.1:1",
		big.NewInt(1337), big.NewInt(2_000_000_000), 800_000)
	require.NoError(t, err)
	return provider
}

func TestProviderCloseIdempotent(t *testing.T) {
	provider := dialTestProvider(t)

	assert.NotPanics(t, func() { provider.Close() })
	// second close must not panic either
	assert.NotPanics(t, func() { provider.Close() })
}

func TestProviderTxOptsDefaults(t *testing.T) {
	provider := dialTestProvider(t)
	defer provider.Close()

	signer, err := crypto.GenerateKey()
	require.NoError(t, err)

	opts, err := provider.TxOpts(context.Background(), signer)
	require.NoError(t, err)

	assert.Equal(t, signer.Address(), opts.From)
	assert.Equal(t, big.NewInt(2_000_000_000), opts.GasPrice)
	assert.Equal(t, uint64(800_000), opts.GasLimit)
	assert.Equal(t, big.NewInt(1337), provider.ChainID())
}
