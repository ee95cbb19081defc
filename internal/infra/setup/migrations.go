package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
)

// MigrateDB 执行全部数据库迁移。
// 聊天相关的三张表使用自定义 SQL 创建，以显式声明外键级联删除和
// (room_id, user_id) 组合唯一索引——这两个约束是核心不变量的存储层保障。
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}

	if err := migrateChatTables(db); err != nil {
		return err
	}

	logrus.Info("Database migration completed successfully")
	return nil
}

// migrateChatTables 创建 rooms / participants / messages 三张表
func migrateChatTables(db *gorm.DB) error {
	statements := []struct {
		table string
		sql   string
	}{
		{
			table: "rooms",
			sql: `
	CREATE TABLE IF NOT EXISTS rooms (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(191) NOT NULL,
		description TEXT,
		creator_id BIGINT UNSIGNED NOT NULL,
		created_at DATETIME(3),
		updated_at DATETIME(3),
		last_active DATETIME(3),
		INDEX idx_creator_id (creator_id),
		INDEX idx_last_active (last_active)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;
	`,
		},
		{
			table: "participants",
			sql: `
	CREATE TABLE IF NOT EXISTS participants (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		room_id BIGINT UNSIGNED NOT NULL,
		user_id BIGINT UNSIGNED NOT NULL,
		joined_at DATETIME(3),
		UNIQUE INDEX idx_room_user (room_id, user_id),
		INDEX idx_participant_user (user_id),
		CONSTRAINT fk_participants_room FOREIGN KEY (room_id)
			REFERENCES rooms (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;
	`,
		},
		{
			table: "messages",
			sql: `
	CREATE TABLE IF NOT EXISTS messages (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		room_id BIGINT UNSIGNED NOT NULL,
		author_id BIGINT UNSIGNED NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME(3),
		INDEX idx_room_created (room_id, created_at),
		INDEX idx_message_author (author_id),
		CONSTRAINT fk_messages_room FOREIGN KEY (room_id)
			REFERENCES rooms (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;
	`,
		},
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt.sql).Error; err != nil {
			logrus.Errorf("Failed to create %s table: %v", stmt.table, err)
			return fmt.Errorf("failed to create %s table: %w", stmt.table, err)
		}
	}
	logrus.Info("Chat tables created/verified successfully")
	return nil
}
