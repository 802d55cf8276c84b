package params

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func baseUnits(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func TestDefaultAmounts(t *testing.T) {
	cfg := Default()

	assert.Equal(t, baseUnits(10), cfg.Trade.MakerAssetAmount)
	assert.Equal(t, baseUnits(4), cfg.Trade.TakerAssetAmount)
	assert.Equal(t, baseUnits(2), cfg.Trade.RightTakerAssetAmount)
	assert.Equal(t, 10*time.Minute, cfg.Trade.ExpirationWindow)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("RPC_URL", "http://10.0.0.5:8545")
	t.Setenv("CHAIN_ID", "50")
	t.Setenv("EXCHANGE_ADDRESS", "0x48bacb9266a570d521063ef5dd96e61686dbe788")
	t.Setenv("GAS_PRICE_WEI", "1000000000")
	t.Setenv("GAS_LIMIT", "500000")
	t.Setenv("MINING_TIMEOUT_SEC", "30")
	t.Setenv("MAKER_PRIVATE_KEY", "aa")
	t.Setenv("JOURNAL_PATH", "/tmp/journal")

	cfg := LoadFromEnv("")

	assert.Equal(t, "http://10.0.0.5:8545", cfg.Chain.RPCURL)
	assert.Equal(t, big.NewInt(50), cfg.Chain.ChainID)
	assert.Equal(t, common.HexToAddress("0x48bacb9266a570d521063ef5dd96e61686dbe788"), cfg.Chain.Exchange)
	assert.Equal(t, big.NewInt(1_000_000_000), cfg.Chain.GasPrice)
	assert.Equal(t, uint64(500_000), cfg.Chain.GasLimit)
	assert.Equal(t, 30*time.Second, cfg.Chain.MiningTimeout)
	assert.Equal(t, "aa", cfg.Accounts.MakerKey)
	assert.Equal(t, "/tmp/journal", cfg.JournalPath)
}

func TestLoadFromEnvDefaultsWhenUnset(t *testing.T) {
	cfg := LoadFromEnv("testdata/empty.env")
	def := Default()

	assert.Equal(t, def.Chain.GasLimit, cfg.Chain.GasLimit)
	assert.Equal(t, def.Trade.MakerAssetAmount, cfg.Trade.MakerAssetAmount)
}
