package database

import (
	"context"
	"errors"
	"fmt"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

// Repository 持有一个数据库会话, 所有操作共享它, 不加锁, 同一时间只应被一个调用方使用
type Repository struct {
	db           *gorm.DB
	queryTimeout time.Duration
	logger       log.LoggerInterface
	now          func() time.Time
}

func NewRepository(db *gorm.DB, queryTimeout time.Duration, logger log.LoggerInterface) *Repository {
	return &Repository{
		db:           db,
		queryTimeout: queryTimeout,
		logger:       logger,
		now:          time.Now,
	}
}

// SetClock 替换时间窗口查询使用的当前时间
func (repository *Repository) SetClock(now func() time.Time) {
	repository.now = now
}

func (repository *Repository) DB() *gorm.DB { return repository.db }

func (repository *Repository) session() (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), repository.queryTimeout)
	return repository.db.WithContext(ctx), cancel
}

// translateError 约束冲突返回可识别的错误, 其余错误视为后端故障并以CRITICAL记录
func (repository *Repository) translateError(action string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		repository.logger.ErrorF("%s: %v", action, err)
		return fmt.Errorf("%s: %w", action, operation.ErrDuplicateEntry)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		repository.logger.ErrorF("%s: %v", action, err)
		return fmt.Errorf("%s: %w", action, operation.ErrForeignKeyViolation)
	default:
		repository.logger.CriticalF("%s failed: %v", action, err)
		return fmt.Errorf("%s: %w: %w", action, operation.ErrBackend, err)
	}
}

// normalizeValue 时间统一转换为UTC, 与写入时的存储格式保持一致
func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case time.Time:
		return v.UTC()
	case *time.Time:
		if v == nil {
			return nil
		}
		return v.UTC()
	default:
		return value
	}
}
