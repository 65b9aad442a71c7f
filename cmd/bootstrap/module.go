package bootstrap

import (
	"nexus-store/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StorageModule,
	JWTModule,
	components.StoreModule,
	components.HandlerModule,
)
