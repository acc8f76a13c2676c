package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PartyCacheRepo 把当事人解析结果持久化，重启后仍然命中
type PartyCacheRepo struct {
	db *gorm.DB
}

func NewPartyCacheRepo(db *gorm.DB) *PartyCacheRepo {
	return &PartyCacheRepo{db: db}
}

func (r *PartyCacheRepo) Get(ctx context.Context, key string) (map[string]string, bool, error) {
	var entry PartyCacheEntry
	err := r.db.WithContext(ctx).Where("cache_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var out map[string]string
	if err := json.Unmarshal(entry.Payload, &out); err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (r *PartyCacheRepo) Put(ctx context.Context, key string, value map[string]string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := PartyCacheEntry{Key: key, Payload: raw, CreatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cache_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "created_at"}),
		}).
		Create(&entry).Error
}

// PruneOlderThan 定时任务调用，返回删除条数
func (r *PartyCacheRepo) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&PartyCacheEntry{})
	return result.RowsAffected, result.Error
}
