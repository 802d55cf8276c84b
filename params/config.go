package params

import (
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

// Chain holds connection details and contract deployment addresses.
type Chain struct {
	RPCURL        string
	ChainID       *big.Int
	Exchange      common.Address // v2 Exchange contract
	ERC20Proxy    common.Address // asset proxy granted allowances
	ZRXToken      common.Address
	WETHToken     common.Address
	GasPrice      *big.Int // default gas price for every tx
	GasLimit      uint64   // default gas limit for every tx
	MiningTimeout time.Duration
}

// Accounts holds the three role keys. Order matters: maker, taker, matcher.
type Accounts struct {
	MakerKey   string
	TakerKey   string
	MatcherKey string
}

// Trade holds the scenario amounts in base units (18 decimals).
// Left order: maker sells MakerAssetAmount ZRX for TakerAssetAmount WETH.
// Right order: counterparty sells TakerAssetAmount WETH for
// RightTakerAssetAmount ZRX, which crosses the left order.
type Trade struct {
	MakerAssetAmount      *big.Int
	TakerAssetAmount      *big.Int
	RightTakerAssetAmount *big.Int
	ExpirationWindow      time.Duration
}

type Config struct {
	Chain    Chain
	Accounts Accounts
	Trade    Trade
	// JournalPath enables the pebble run journal when non-empty.
	JournalPath string
}

func toBaseUnits(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func Default() Config {
	return Config{
		Chain: Chain{
			RPCURL:        "http://127.0.0.1:8545",
			ChainID:       big.NewInt(1337),
			GasPrice:      big.NewInt(2_000_000_000), // 2 gwei
			GasLimit:      800_000,
			MiningTimeout: 2 * time.Minute,
		},
		Trade: Trade{
			MakerAssetAmount:      toBaseUnits(10),
			TakerAssetAmount:      toBaseUnits(4),
			RightTakerAssetAmount: toBaseUnits(2),
			ExpirationWindow:      10 * time.Minute,
		},
		JournalPath: "",
	}
}

// LoadFromEnv loads configuration from a .env file (if present) and
// environment variables. Priority: ENV > .env file > defaults.
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load() // loads .env from current directory
	}

	if v := os.Getenv("RPC_URL"); v != "" {
		cfg.Chain.RPCURL = v
	}
	if v := os.Getenv("CHAIN_ID"); v != "" {
		if id, ok := new(big.Int).SetString(v, 10); ok {
			cfg.Chain.ChainID = id
		}
	}
	if v := os.Getenv("EXCHANGE_ADDRESS"); v != "" {
		cfg.Chain.Exchange = common.HexToAddress(v)
	}
	if v := os.Getenv("ERC20_PROXY_ADDRESS"); v != "" {
		cfg.Chain.ERC20Proxy = common.HexToAddress(v)
	}
	if v := os.Getenv("ZRX_TOKEN_ADDRESS"); v != "" {
		cfg.Chain.ZRXToken = common.HexToAddress(v)
	}
	if v := os.Getenv("WETH_TOKEN_ADDRESS"); v != "" {
		cfg.Chain.WETHToken = common.HexToAddress(v)
	}
	if v := os.Getenv("GAS_PRICE_WEI"); v != "" {
		if p, ok := new(big.Int).SetString(v, 10); ok {
			cfg.Chain.GasPrice = p
		}
	}
	if v := os.Getenv("GAS_LIMIT"); v != "" {
		if l, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Chain.GasLimit = l
		}
	}
	if v := os.Getenv("MINING_TIMEOUT_SEC"); v != "" {
		if s, err := strconv.Atoi(v); err == nil {
			cfg.Chain.MiningTimeout = time.Duration(s) * time.Second
		}
	}

	cfg.Accounts.MakerKey = os.Getenv("MAKER_PRIVATE_KEY")
	cfg.Accounts.TakerKey = os.Getenv("TAKER_PRIVATE_KEY")
	cfg.Accounts.MatcherKey = os.Getenv("MATCHER_PRIVATE_KEY")

	if v := os.Getenv("JOURNAL_PATH"); v != "" {
		cfg.JournalPath = v
	}

	return cfg
}
