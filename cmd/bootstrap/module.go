package bootstrap

import (
	"stayhub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	SeedModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
