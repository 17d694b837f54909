// Package config loads the process configuration from environment variables
// and validates it before any component is built.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/recoverywallet/internal/pkg/validator"
	"github.com/gabapcia/recoverywallet/internal/recovery"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
)

// Config is the root configuration.
type Config struct {
	LogLevel         string             `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string             `envconfig:"SERVICE_NAME" default:"recoverywallet" validate:"required"`
	TelemetryEnabled bool               `envconfig:"TELEMETRY_ENABLED" default:"false"`
	Redis            RedisConfig        `envconfig:"REDIS"`
	Wallet           WalletConfig       `envconfig:"WALLET"`
	Ethereum         EthereumConfig     `envconfig:"ETHEREUM"`
	HTTP             HTTPConfig         `envconfig:"HTTP"`
	DepositWatch     DepositWatchConfig `envconfig:"DEPOSIT_WATCH"`
}

// RedisConfig locates the wallet state store.
type RedisConfig struct {
	Addr          string `envconfig:"ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	Username      string `envconfig:"USERNAME"`
	Password      string `envconfig:"PASSWORD"`
	DB            int    `envconfig:"DB" default:"0" validate:"gte=0"`
	RetryAttempts uint   `envconfig:"RETRY_ATTEMPTS" default:"3" validate:"gte=1"`
}

// WalletConfig holds the construction parameters of the wallet.
type WalletConfig struct {
	Address                string   `envconfig:"ADDRESS" validate:"omitempty,eth_addr"`
	Spender                string   `envconfig:"SPENDER" required:"true" validate:"eth_addr"`
	Guardians              []string `envconfig:"GUARDIANS" required:"true" validate:"min=1,dive,eth_addr"`
	SpenderChangeThreshold uint     `envconfig:"SPENDER_CHANGE_THRESHOLD" default:"1" validate:"gte=1"`
	TransactionThreshold   uint     `envconfig:"TRANSACTION_THRESHOLD" default:"1" validate:"gte=1"`
	ReservedThreshold      uint     `envconfig:"RESERVED_THRESHOLD" default:"0"`
}

// EthereumConfig points the call executor at a node. An empty RPCURL keeps
// outbound calls on the wallet's own ledger. With a node, WALLET_ADDRESS is
// required since it is the account transactions are sent from.
type EthereumConfig struct {
	RPCURL      string        `envconfig:"RPC_URL" validate:"omitempty,url"`
	RPCAPIKey   string        `envconfig:"RPC_API_KEY"`
	RPCTimeout  time.Duration `envconfig:"RPC_TIMEOUT" default:"5s" validate:"gt=0"`
	RPCRetryMax int           `envconfig:"RPC_RETRY_MAX" default:"2" validate:"gte=0"`
}

// HTTPConfig configures the HTTP API served by the serve command.
// IdempotencyTTL is how long recorded outcomes are replayed, and
// IdempotencyClaimTTL how long a delivery holds its key while it runs.
type HTTPConfig struct {
	Addr                string        `envconfig:"ADDR" default:":8080"`
	JWTSecret           string        `envconfig:"JWT_SECRET"`
	IdempotencyTTL      time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h" validate:"gt=0"`
	IdempotencyClaimTTL time.Duration `envconfig:"IDEMPOTENCY_CLAIM_TTL" default:"1m" validate:"gt=0"`
}

// DepositWatchConfig controls the background watcher crediting on-chain
// transfers into the wallet. It needs both the wallet address and an RPC URL.
type DepositWatchConfig struct {
	Enabled       bool          `envconfig:"ENABLED" default:"false"`
	PollInterval  time.Duration `envconfig:"POLL_INTERVAL" default:"12s" validate:"gt=0"`
	Confirmations uint64        `envconfig:"CONFIRMATIONS" default:"6"`
	StartBlock    *uint64       `envconfig:"START_BLOCK"`
	ClaimTTL      time.Duration `envconfig:"CLAIM_TTL" default:"1m" validate:"gt=0"`
	Retention     time.Duration `envconfig:"RETENTION" default:"168h" validate:"gt=0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	if cfg.Ethereum.RPCURL != "" && cfg.Wallet.Address == "" {
		return Config{}, fmt.Errorf("%w: ETHEREUM_RPC_URL requires WALLET_ADDRESS to send transactions from", validator.ErrValidation)
	}

	if cfg.DepositWatch.Enabled && (cfg.Wallet.Address == "" || cfg.Ethereum.RPCURL == "") {
		return Config{}, fmt.Errorf("%w: deposit watching requires WALLET_ADDRESS and ETHEREUM_RPC_URL", validator.ErrValidation)
	}

	return cfg, nil
}

// Recovery converts the wallet settings into the recovery construction parameters.
func (w WalletConfig) Recovery() recovery.Config {
	guardians := make([]common.Address, len(w.Guardians))
	for i, g := range w.Guardians {
		guardians[i] = common.HexToAddress(g)
	}

	var address common.Address
	if w.Address != "" {
		address = common.HexToAddress(w.Address)
	}

	return recovery.Config{
		Address:                address,
		InitialSpender:         common.HexToAddress(w.Spender),
		Guardians:              guardians,
		SpenderChangeThreshold: w.SpenderChangeThreshold,
		TransactionThreshold:   w.TransactionThreshold,
		ReservedThreshold:      w.ReservedThreshold,
	}
}
