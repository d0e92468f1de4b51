package sqlstore

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为唯一键冲突
// TranslateError打开时驱动会返回gorm.ErrDuplicatedKey,
// 其余情况按各数据库的错误信息兜底判断
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || // MySQL 1062
		strings.Contains(msg, "duplicate key value") || // PostgreSQL 23505
		strings.Contains(msg, "UNIQUE constraint failed") // SQLite
}
