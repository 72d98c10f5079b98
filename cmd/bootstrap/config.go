package bootstrap

import (
	"affiliate-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.AuthConfig { return cfg.Auth },
		func(cfg config.Config) config.LedgerConfig { return cfg.Ledger },
	),
)
