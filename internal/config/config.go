package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"github.com/vulpemventures/dexd/pkg/marketmaking/formula"
)

const (
	// DatadirKey is the local data directory to store the internal state of the daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"
	// SwapFeeBpsKey is the fee in basis points charged on the input amount of every swap
	SwapFeeBpsKey = "SWAP_FEE_BPS"
	// LpTokenDustKey is the minimum balance of the receipt-token assets registered on the ledger
	LpTokenDustKey = "LP_TOKEN_DUST"
	// WebhookTimeoutKey is the timeout in seconds for invoking subscribed webhook endpoints
	WebhookTimeoutKey = "WEBHOOK_TIMEOUT"

	// DBBadger and DBInMemory are the supported database types
	DBBadger   = "badger"
	DBInMemory = "inmemory"

	DbLocation = "db"
)

var vip *viper.Viper

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("DEXD")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir())
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DBTypeKey, DBBadger)
	vip.SetDefault(SwapFeeBpsKey, 100)
	vip.SetDefault(LpTokenDustKey, 1)
	vip.SetDefault(WebhookTimeoutKey, 10)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetUint64(key string) uint64 {
	return vip.GetUint64(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	switch dbType := GetString(DBTypeKey); dbType {
	case DBBadger, DBInMemory:
	default:
		return fmt.Errorf("unsupported database type: %s", dbType)
	}

	if fee := GetUint64(SwapFeeBpsKey); fee >= formula.FeeDivisor {
		return fmt.Errorf(
			"%s must be lower than %d", SwapFeeBpsKey, formula.FeeDivisor,
		)
	}

	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(filepath.Join(GetDatadir(), DbLocation))
}

func defaultDatadir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dexd"
	}
	return filepath.Join(home, ".dexd")
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
