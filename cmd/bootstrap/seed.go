package bootstrap

import (
	"context"
	"log/slog"

	"stayhub/internal/infra/db"
	"stayhub/internal/infra/repository"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/password"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedAdminAccount),
)

// SeedAdminAccount ensures an admin login exists on startup when ADMIN_EMAIL
// is set. Existing accounts with the same email are left untouched.
func SeedAdminAccount(lc fx.Lifecycle, cfg config.Config, pool db.DBTX, logger *slog.Logger) {
	if cfg.Admin.Email == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			hash, err := password.Hash(cfg.Admin.Password)
			if err != nil {
				return errs.Wrap(err, "ADMIN_PASSWORD rejected")
			}

			if err := repository.NewUserRepository(pool).EnsureAdmin(ctx, cfg.Admin.Email, hash); err != nil {
				return err
			}

			logger.Info("admin account ensured", "email", cfg.Admin.Email)
			return nil
		},
	})
}
