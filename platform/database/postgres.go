package database

import (
	"github.com/DedS3t/marble-backend/platform/config"
	"github.com/go-pg/pg/v10"
)

func PostgreSQLConnection(cfg config.Config) *pg.DB {
	return pg.Connect(&pg.Options{
		User:     cfg.DBUser,
		Addr:     cfg.DBAddr,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
	})
}
