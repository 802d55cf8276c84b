package eth

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hwpark/zrxmatch/pkg/crypto"
)

// Wallet is the account provider: an ordered list of signers loaded from
// configured private keys. Order is preserved so callers can assign roles
// by position (maker, taker, matcher).
type Wallet struct {
	signers []*crypto.Signer
	byAddr  map[common.Address]*crypto.Signer
}

// NewWallet parses the given hex private keys in order.
func NewWallet(hexKeys ...string) (*Wallet, error) {
	if len(hexKeys) == 0 {
		return nil, fmt.Errorf("wallet: no keys configured")
	}
	w := &Wallet{byAddr: make(map[common.Address]*crypto.Signer, len(hexKeys))}
	for i, key := range hexKeys {
		if key == "" {
			return nil, fmt.Errorf("wallet: key %d is empty", i)
		}
		signer, err := crypto.FromPrivateKeyHex(key)
		if err != nil {
			return nil, fmt.Errorf("wallet: key %d: %w", i, err)
		}
		w.signers = append(w.signers, signer)
		w.byAddr[signer.Address()] = signer
	}
	return w, nil
}

// Accounts returns the signing addresses in configuration order.
func (w *Wallet) Accounts() []common.Address {
	addrs := make([]common.Address, len(w.signers))
	for i, s := range w.signers {
		addrs[i] = s.Address()
	}
	return addrs
}

// Signer returns the signer for addr, if the wallet holds its key.
func (w *Wallet) Signer(addr common.Address) (*crypto.Signer, bool) {
	s, ok := w.byAddr[addr]
	return s, ok
}

// SignerAt returns the signer at position i.
func (w *Wallet) SignerAt(i int) (*crypto.Signer, error) {
	if i < 0 || i >= len(w.signers) {
		return nil, fmt.Errorf("wallet: no account at index %d", i)
	}
	return w.signers[i], nil
}
