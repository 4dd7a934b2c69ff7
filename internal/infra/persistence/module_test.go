package persistence

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/domain/repository"
)

func TestModule_Bolt(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Bolt = &config.BoltConfig{Path: filepath.Join(t.TempDir(), "mv.db")}

	var (
		tm       repository.TransactionManager
		products repository.ProductRepository
		logs     repository.ActivityLogRepository
	)
	app := fxtest.New(t,
		fx.Supply(cfg, slog.New(slog.DiscardHandler)),
		Module(BackendBolt),
		fx.Populate(&tm, &products, &logs),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, tm)
	assert.NotNil(t, products)
	assert.NotNil(t, logs)
}

func TestModule_UnknownBackend(t *testing.T) {
	err := fx.New(fx.NopLogger, Module("redis")).Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrUnknownBackend.Error())
}
