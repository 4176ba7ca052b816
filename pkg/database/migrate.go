package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations 将内嵌 SQL 迁移推进到最新版本
//
// dirty 状态说明上一次迁移中途失败，schema 不可信，此时拒绝启动
// 而不是带病运行，需人工修复后重试。
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("加载内嵌迁移文件失败: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("创建迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("初始化迁移实例失败: %w", err)
	}

	upErr := m.Up()

	version, dirty, verErr := m.Version()
	if verErr != nil && !errors.Is(verErr, migrate.ErrNilVersion) {
		return fmt.Errorf("读取迁移版本失败: %w", verErr)
	}
	if dirty {
		return fmt.Errorf("数据库 schema 处于 dirty 状态（版本 %d），请人工修复后重启", version)
	}

	switch {
	case upErr == nil:
		logger.Info("数据库迁移已应用", zap.Uint("version", version))
	case errors.Is(upErr, migrate.ErrNoChange):
		logger.Info("数据库 schema 已是最新", zap.Uint("version", version))
	default:
		return fmt.Errorf("执行迁移失败: %w", upErr)
	}

	return nil
}
