package redisx

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// setIfVersionScript пишет значение, только если версия дня не изменилась
// с момента чтения.
var setIfVersionScript = redis.NewScript(`
local v = redis.call("GET", KEYS[2]) or "0"
if v ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1`)

// DayCache хранит списки за день в JSON. Создание брони кэш не читает,
// каждая запись инвалидирует затронутые дни.
type DayCache struct {
	rdb    redis.UniversalClient
	logger logger.Logger
}

func NewDayCache(rdb redis.UniversalClient, log logger.Logger) *DayCache {
	return &DayCache{rdb: rdb, logger: log}
}

func (c *DayCache) GetSpaceDay(ctx context.Context, spaceID, date string) ([]domain.Booking, int64, bool) {
	var out []domain.Booking
	version, ok := c.get(ctx, spaceDayKey(spaceID, date), date, &out)
	if !ok {
		return nil, version, false
	}
	return out, version, true
}

func (c *DayCache) SetSpaceDay(ctx context.Context, spaceID, date string, version int64, bookings []domain.Booking) {
	c.set(ctx, spaceDayKey(spaceID, date), date, version, bookings)
}

func (c *DayCache) GetCatalogDay(ctx context.Context, date string) ([]domain.SpaceDay, int64, bool) {
	var out []domain.SpaceDay
	version, ok := c.get(ctx, catalogDayKey(date), date, &out)
	if !ok {
		return nil, version, false
	}
	return out, version, true
}

func (c *DayCache) SetCatalogDay(ctx context.Context, date string, version int64, days []domain.SpaceDay) {
	c.set(ctx, catalogDayKey(date), date, version, days)
}

// Invalidate сначала поднимает версию дня, затем удаляет ключи: заполнение,
// начатое до записи, уже не пройдёт проверку версии.
func (c *DayCache) Invalidate(ctx context.Context, spaceID string, dates []string) {
	if len(dates) == 0 {
		return
	}
	_, err := c.rdb.Pipelined(context.WithoutCancel(ctx), func(p redis.Pipeliner) error {
		for _, d := range dates {
			p.Incr(ctx, dayVersionKey(d))
			p.Expire(ctx, dayVersionKey(d), TTLDayVersion)
			p.Del(ctx, spaceDayKey(spaceID, d), catalogDayKey(d))
		}
		return nil
	})
	if err != nil {
		c.logger.Warn("day cache invalidate failed",
			logger.String("space_id", spaceID),
			logger.String("error", err.Error()),
		)
	}
}

// get читает значение и версию дня одним MGET. При ошибке версия -1,
// и последующий set ничего не запишет.
func (c *DayCache) get(ctx context.Context, key, date string, out any) (int64, bool) {
	vals, err := c.rdb.MGet(ctx, key, dayVersionKey(date)).Result()
	if err != nil || len(vals) != 2 {
		if err != nil {
			c.logger.Warn("day cache read failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
		return -1, false
	}

	version, ok := parseVersion(vals[1])
	if !ok {
		return -1, false
	}

	raw, isString := vals[0].(string)
	if !isString {
		return version, false
	}
	if err = json.Unmarshal([]byte(raw), out); err != nil {
		c.logger.Warn("day cache decode failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return version, false
	}
	return version, true
}

func (c *DayCache) set(ctx context.Context, key, date string, version int64, v any) {
	if version < 0 {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	err = setIfVersionScript.Run(ctx, c.rdb,
		[]string{key, dayVersionKey(date)},
		strconv.FormatInt(version, 10), raw, TTLDayCache.Milliseconds(),
	).Err()
	if err != nil {
		c.logger.Warn("day cache write failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func parseVersion(v any) (int64, bool) {
	if v == nil {
		return 0, true
	}
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
