package main

import (
	"path/filepath"
	"time"

	"github.com/vulpemventures/dexd/internal/config"
	"github.com/vulpemventures/dexd/internal/core/application"
	"github.com/vulpemventures/dexd/internal/core/domain"
	"github.com/vulpemventures/dexd/internal/core/ports"
	badgerledger "github.com/vulpemventures/dexd/internal/infrastructure/ledger/badger"
	inmemoryledger "github.com/vulpemventures/dexd/internal/infrastructure/ledger/inmemory"
	webhookpubsub "github.com/vulpemventures/dexd/internal/infrastructure/pubsub/webhook"
	dbbadger "github.com/vulpemventures/dexd/internal/infrastructure/storage/db/badger"
	"github.com/vulpemventures/dexd/internal/infrastructure/storage/db/inmemory"
)

// getService wires the configured storage, ledger and pubsub into a
// DexService. The returned cleanup must be invoked once done with it.
func getService() (application.DexService, func(), error) {
	var (
		poolRepository domain.PoolRepository
		ledger         ports.Ledger
		cleanup        = func() {}
	)

	switch config.GetString(config.DBTypeKey) {
	case config.DBInMemory:
		poolRepository = inmemory.NewPoolRepositoryImpl()
		ledger = inmemoryledger.NewLedgerImpl()
	default:
		dbDir := filepath.Join(config.GetDatadir(), config.DbLocation)
		dbManager, err := dbbadger.NewDbManager(dbDir, nil)
		if err != nil {
			return nil, nil, err
		}
		poolRepository = dbbadger.NewPoolRepositoryImpl(dbManager)
		ledger = badgerledger.NewLedgerImpl(dbManager)
		cleanup = func() { dbManager.Close() }
	}

	pubsub := webhookpubsub.NewWebhookPubSubService(
		time.Duration(config.GetInt(config.WebhookTimeoutKey)) * time.Second,
	)

	svc := application.NewDexService(
		poolRepository, ledger, pubsub,
		config.GetUint64(config.SwapFeeBpsKey),
		config.GetUint64(config.LpTokenDustKey),
	)
	return svc, cleanup, nil
}
