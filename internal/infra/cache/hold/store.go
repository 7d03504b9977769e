package hold

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	holdKeyPrefix  = "ivr:hold:"
	staffKeyPrefix = "ivr:staff:"
	holdsIndexKey  = "ivr:holds"

	// Блокировка мастера живет только на время проверки и записи брони
	staffLockTTL = 5 * time.Second
)

// Store хранит временные брони телефонных звонков в Redis
// Бронь занимает конкретного мастера и живет не дольше TTL
type Store struct {
	rdb *redis.Client
}

// NewStore создает хранилище броней
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func holdKey(id string) string {
	return holdKeyPrefix + id
}

func staffLockKey(staffID string) string {
	return staffKeyPrefix + staffID + ":lock"
}

// Place ставит бронь на мастера h.StaffID
// Пересечение с живой бронью того же мастера дает ErrSlotHeld
// Пока другой звонок ставит бронь на этого мастера, возвращается ErrStaffBusy
func (s *Store) Place(ctx context.Context, h *domain.Hold, ttl time.Duration) error {
	if h.StaffID == "" {
		return fmt.Errorf("%w: Place - hold %s has no staff", ErrInvalidHold, h.ID)
	}

	lk := staffLockKey(h.StaffID)
	ok, err := s.rdb.SetNX(ctx, lk, h.ID, staffLockTTL).Result()
	if err != nil {
		return fmt.Errorf("%w: Place - lock staff: %v", ErrRedis, err)
	}
	if !ok {
		return fmt.Errorf("%w: staff=%s", ErrStaffBusy, h.StaffID)
	}
	defer s.unlock(lk, h.ID)

	active, err := s.Active(ctx, h.StartDT, h.EndDT)
	if err != nil {
		return err
	}
	for _, other := range active {
		if other.StaffID == h.StaffID {
			return fmt.Errorf("%w: staff=%s start=%s by hold=%s",
				ErrSlotHeld, h.StaffID, h.StartDT.Format(time.RFC3339), other.ID)
		}
	}

	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("%w: Place - marshal hold: %v", ErrDecode, err)
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, holdKey(h.ID), data, ttl)
		pipe.ZAdd(ctx, holdsIndexKey, redis.Z{Score: float64(h.StartDT.Unix()), Member: h.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Place - write hold: %v", ErrRedis, err)
	}
	return nil
}

// unlock снимает блокировку, только если она все еще наша
func (s *Store) unlock(key, owner string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if v, err := s.rdb.Get(ctx, key).Result(); err == nil && v == owner {
		_ = s.rdb.Del(ctx, key).Err()
	}
}

// Get возвращает бронь по ID
func (s *Store) Get(ctx context.Context, id string) (*domain.Hold, error) {
	data, err := s.rdb.Get(ctx, holdKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrHoldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get hold key: %v", ErrRedis, err)
	}

	var h domain.Hold
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal hold %s: %v", ErrDecode, id, err)
	}
	return &h, nil
}

// Active возвращает живые брони, пересекающие [from, to)
// Истекшие брони попутно вычищаются из индекса
func (s *Store) Active(ctx context.Context, from, to time.Time) ([]*domain.Hold, error) {
	ids, err := s.rdb.ZRangeByScore(ctx, holdsIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("(%d", to.Unix()),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Active - range index: %v", ErrRedis, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = holdKey(id)
	}
	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Active - get holds: %v", ErrRedis, err)
	}

	holds := make([]*domain.Hold, 0, len(ids))
	stale := make([]interface{}, 0)
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var h domain.Hold
		if err := json.Unmarshal([]byte(raw), &h); err != nil {
			return nil, fmt.Errorf("%w: Active - unmarshal hold %s: %v", ErrDecode, ids[i], err)
		}
		if h.Overlaps(from, to) {
			holds = append(holds, &h)
		}
	}

	if len(stale) > 0 {
		if err := s.rdb.ZRem(ctx, holdsIndexKey, stale...).Err(); err != nil {
			return nil, fmt.Errorf("%w: Active - prune index: %v", ErrRedis, err)
		}
	}
	return holds, nil
}

// Release снимает бронь; снятая или истекшая бронь не ошибка
func (s *Store) Release(ctx context.Context, id string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, holdKey(id))
		pipe.ZRem(ctx, holdsIndexKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Release - delete hold: %v", ErrRedis, err)
	}
	return nil
}
