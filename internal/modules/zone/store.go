// README: Zone store backed by PostgreSQL with a short-TTL Redis cache.
package zone

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const cacheKey = "zones:active"

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(db *pgxpool.Pool, redis *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Store{db: db, redis: redis, ttl: ttl}
}

// ActiveZones returns every active zone, serving from the Redis cache when
// fresh. Cache failures fall through to Postgres.
func (s *Store) ActiveZones(ctx context.Context) ([]Zone, error) {
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var zones []Zone
			if err := json.Unmarshal([]byte(val), &zones); err == nil {
				return zones, nil
			}
		}
	}

	rows, err := s.db.Query(ctx, `
        SELECT id, name, center_lat, center_lng, radius_km
        FROM zones
        WHERE active`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []Zone
	for rows.Next() {
		var z Zone
		if err := rows.Scan(&z.ID, &z.Name, &z.Center.Lat, &z.Center.Lng, &z.RadiusKm); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if s.redis != nil {
		if buf, err := json.Marshal(zones); err == nil {
			_ = s.redis.Set(ctx, cacheKey, buf, s.ttl).Err()
		}
	}
	return zones, nil
}
