package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"szerzodes-gpt/logger"
)

// PartyCachePruner 由 postgres.PartyCacheRepo 实现
type PartyCachePruner interface {
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// StartCronJob 每天凌晨 2 点清理过期的当事人缓存，ttl<=0 时不启动
func StartCronJob(pruner PartyCachePruner, ttl time.Duration, log *logger.Logger) (*cron.Cron, error) {
	if ttl <= 0 {
		return nil, nil
	}
	c := cron.New()
	_, err := c.AddFunc("0 2 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		_, _ = PruneOnce(ctx, pruner, ttl, time.Now(), log)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func PruneOnce(ctx context.Context, pruner PartyCachePruner, ttl time.Duration, now time.Time, log *logger.Logger) (int64, error) {
	rows, err := pruner.PruneOlderThan(ctx, now.Add(-ttl))
	if err != nil {
		log.Error("[Cron] prune party cache failed", "error", err)
		return 0, err
	}
	log.Info("[Cron] pruned party cache", "rows", rows)
	return rows, nil
}
