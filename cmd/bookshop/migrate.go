package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/sqlstore"
	"github.com/xiebiao/bookshop/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "执行表结构迁移",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		log, closer, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
		if err != nil {
			return fmt.Errorf("初始化日志失败: %w", err)
		}
		defer closer.Close()

		db, err := sqlstore.NewDB(cfg, log)
		if err != nil {
			return err
		}
		defer sqlstore.Close(db)

		if err := sqlstore.Migrate(db); err != nil {
			return fmt.Errorf("迁移失败: %w", err)
		}
		log.Info("migration completed", "driver", cfg.Database.Driver, "dbname", cfg.Database.DBName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
