// Package db opens the local sqlite object store. The app keeps its whole
// persistent object graph in one file-backed database; tests use
// file::memory: handles.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/photohub/internal/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Module provides the shared *gorm.DB handle.
var Module = fx.Provide(Open)

// Open opens (and creates if needed) the sqlite database at cfg.DBPath.
func Open(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}
