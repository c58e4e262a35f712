package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/internal/config"
	"github.com/chapeltools/rota-admin/pkg/db"
	"github.com/chapeltools/rota-admin/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Postgres *postgres.DB // nil unless the postgres backend is configured
	Logger   *zap.Logger
	Ctx      context.Context
}

// resolveOrg returns the org id from the flag value, falling back to the
// configured default
func (app *AppContext) resolveOrg(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if app.Cfg.DefaultOrgID != "" {
		return app.Cfg.DefaultOrgID, nil
	}
	return "", fmt.Errorf("no organization specified: pass --org or set defaultOrgID in the config")
}
