package scenario

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hwpark/zrxmatch/params"
	"github.com/hwpark/zrxmatch/pkg/eth"
	"github.com/hwpark/zrxmatch/pkg/storage"
	"github.com/hwpark/zrxmatch/pkg/util"
	"github.com/hwpark/zrxmatch/pkg/zeroex"
)

// MatchOrders runs the full demonstration: fund and approve two makers,
// build and sign a crossed order pair, submit one matchOrders transaction
// from a third account, and print balances before and after.
//
// The sequence is strictly linear; every transaction is awaited before the
// next begins. Any failure bubbles up after the provider is torn down.
type MatchOrders struct {
	Config params.Config
	Logger *zap.SugaredLogger
	Clock  util.Clock
	Out    io.Writer
}

func (m *MatchOrders) Run(ctx context.Context) error {
	if m.Clock == nil {
		m.Clock = util.RealClock{}
	}
	if m.Out == nil {
		m.Out = os.Stdout
	}
	printer := util.NewPrinter(m.Out)
	startedAt := m.Clock.Now()

	// Account provider: maker, taker (right maker), matcher, in order.
	wallet, err := eth.NewWallet(
		m.Config.Accounts.MakerKey,
		m.Config.Accounts.TakerKey,
		m.Config.Accounts.MatcherKey,
	)
	if err != nil {
		return err
	}
	accounts := wallet.Accounts()
	leftMaker, rightMaker, matcher := accounts[0], accounts[1], accounts[2]

	printer.Accounts([][2]string{
		{"leftMaker", leftMaker.Hex()},
		{"rightMaker", rightMaker.Hex()},
		{"matcher", matcher.Hex()},
	})

	provider, err := eth.Dial(ctx, m.Config.Chain.RPCURL, m.Config.Chain.ChainID,
		m.Config.Chain.GasPrice, m.Config.Chain.GasLimit)
	if err != nil {
		return err
	}
	// Teardown on every exit path, success or failure.
	defer provider.Close()

	zrx, err := eth.NewERC20(m.Config.Chain.ZRXToken, provider)
	if err != nil {
		return err
	}
	weth, err := eth.NewWETH(m.Config.Chain.WETHToken, provider)
	if err != nil {
		return err
	}
	exchange, err := eth.NewExchange(m.Config.Chain.Exchange, provider)
	if err != nil {
		return err
	}

	// Allowances: each maker lets the ERC20 proxy move the asset they sell.
	leftSigner, _ := wallet.Signer(leftMaker)
	rightSigner, _ := wallet.Signer(rightMaker)
	matcherSigner, _ := wallet.Signer(matcher)

	if _, err := m.transact(ctx, provider, "approve ZRX", func() (*types.Transaction, error) {
		opts, err := provider.TxOpts(ctx, leftSigner)
		if err != nil {
			return nil, err
		}
		return zrx.Approve(opts, m.Config.Chain.ERC20Proxy, zeroex.UnlimitedAllowance)
	}); err != nil {
		return err
	}

	if _, err := m.transact(ctx, provider, "approve WETH", func() (*types.Transaction, error) {
		opts, err := provider.TxOpts(ctx, rightSigner)
		if err != nil {
			return nil, err
		}
		return weth.Approve(opts, m.Config.Chain.ERC20Proxy, zeroex.UnlimitedAllowance)
	}); err != nil {
		return err
	}

	// The right maker wraps enough native currency to cover their side.
	if _, err := m.transact(ctx, provider, "deposit WETH", func() (*types.Transaction, error) {
		opts, err := provider.TxOpts(ctx, rightSigner)
		if err != nil {
			return nil, err
		}
		return weth.Deposit(opts, m.Config.Trade.TakerAssetAmount)
	}); err != nil {
		return err
	}

	// Build, hash, and sign the crossed pair.
	expiration := m.Clock.Now().Add(m.Config.Trade.ExpirationWindow)
	left, right, err := BuildCrossedOrders(m.Config, leftMaker, rightMaker, expiration)
	if err != nil {
		return err
	}

	leftHash, err := zeroex.HashOrder(left)
	if err != nil {
		return err
	}
	rightHash, err := zeroex.HashOrder(right)
	if err != nil {
		return err
	}

	signedLeft, err := zeroex.SignOrder(leftSigner, left, zeroex.SignatureEthSign)
	if err != nil {
		return err
	}
	signedRight, err := zeroex.SignOrder(rightSigner, right, zeroex.SignatureEthSign)
	if err != nil {
		return err
	}

	m.Logger.Infow("orders_signed",
		"left_order_hash", leftHash.Hex(),
		"right_order_hash", rightHash.Hex(),
		"expiration", expiration.Unix(),
	)

	if err := m.printHoldings(ctx, printer, "Allowances and balances (before)",
		zrx, weth, leftMaker, rightMaker, matcher); err != nil {
		return err
	}

	// The matcher, distinct from both makers, submits the single
	// matchOrders transaction and keeps the spread.
	receipt, err := m.transact(ctx, provider, "matchOrders", func() (*types.Transaction, error) {
		opts, err := provider.TxOpts(ctx, matcherSigner)
		if err != nil {
			return nil, err
		}
		return exchange.MatchOrders(opts, signedLeft, signedRight)
	})
	if err != nil {
		return err
	}

	printer.TxSummary("matchOrders receipt",
		receipt.TxHash.Hex(), receipt.BlockNumber.Uint64(), receipt.GasUsed, receipt.Status)
	printer.Table("Order hashes", [][2]string{
		{"leftOrderHash", leftHash.Hex()},
		{"rightOrderHash", rightHash.Hex()},
	})

	if err := m.printHoldings(ctx, printer, "Allowances and balances (after)",
		zrx, weth, leftMaker, rightMaker, matcher); err != nil {
		return err
	}

	if m.Config.JournalPath != "" {
		if err := m.journalRun(startedAt, leftHash, rightHash, receipt); err != nil {
			// A journal failure must not turn a successful trade into a
			// failed run.
			m.Logger.Warnw("journal_write_failed", "err", err)
		}
	}
	return nil
}

// transact submits one transaction and awaits mining under the configured
// timeout, logging both sides.
func (m *MatchOrders) transact(ctx context.Context, provider *eth.Provider, label string,
	submit func() (*types.Transaction, error)) (*types.Receipt, error) {

	tx, err := submit()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	m.Logger.Infow("tx_submitted", "step", label, "tx_hash", tx.Hash().Hex())

	waitCtx, cancel := context.WithTimeout(ctx, m.Config.Chain.MiningTimeout)
	defer cancel()
	receipt, err := provider.WaitMined(waitCtx, tx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	m.Logger.Infow("tx_mined", "step", label,
		"tx_hash", tx.Hash().Hex(), "block", receipt.BlockNumber.Uint64(), "gas_used", receipt.GasUsed)
	return receipt, nil
}

func (m *MatchOrders) printHoldings(ctx context.Context, printer *util.Printer, title string,
	zrx *eth.ERC20, weth *eth.WETH, leftMaker, rightMaker, matcher common.Address) error {

	rows := make([][2]string, 0, 12)
	for _, acct := range []struct {
		role string
		addr common.Address
	}{
		{"leftMaker", leftMaker},
		{"rightMaker", rightMaker},
		{"matcher", matcher},
	} {
		zrxBal, err := zrx.BalanceOf(ctx, acct.addr)
		if err != nil {
			return err
		}
		wethBal, err := weth.BalanceOf(ctx, acct.addr)
		if err != nil {
			return err
		}
		zrxAllow, err := zrx.Allowance(ctx, acct.addr, m.Config.Chain.ERC20Proxy)
		if err != nil {
			return err
		}
		wethAllow, err := weth.Allowance(ctx, acct.addr, m.Config.Chain.ERC20Proxy)
		if err != nil {
			return err
		}
		rows = append(rows, holdingRows(acct.role, zrxBal, wethBal, zrxAllow, wethAllow)...)
	}
	printer.Table(title, rows)
	return nil
}

// holdingRows renders one account's balances and proxy allowances for both
// traded tokens.
func holdingRows(role string, zrxBal, wethBal, zrxAllow, wethAllow *big.Int) [][2]string {
	return [][2]string{
		{role + " ZRX", zrxBal.String()},
		{role + " WETH", wethBal.String()},
		{role + " ZRX allowance", zrxAllow.String()},
		{role + " WETH allowance", wethAllow.String()},
	}
}

func (m *MatchOrders) journalRun(startedAt time.Time, leftHash, rightHash common.Hash, receipt *types.Receipt) error {
	journal, err := storage.OpenJournal(m.Config.JournalPath)
	if err != nil {
		return err
	}
	defer journal.Close()

	return journal.SaveRun(storage.RunRecord{
		ID:             uuid.NewString(),
		StartedAt:      startedAt,
		CompletedAt:    m.Clock.Now(),
		LeftOrderHash:  leftHash,
		RightOrderHash: rightHash,
		TxHash:         receipt.TxHash,
		BlockNumber:    receipt.BlockNumber.Uint64(),
		GasUsed:        receipt.GasUsed,
	})
}
