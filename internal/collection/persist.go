package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/ledger"
	"github.com/osse101/PackSim_Go/internal/logger"
	"github.com/osse101/PackSim_Go/internal/stats"
)

type snapshot struct {
	ledger ledger.Snapshot
	stats  domain.UserStats
}

func (s *service) snapshot() snapshot {
	return snapshot{ledger: s.ledger.Snapshot(), stats: s.tracker.Stats()}
}

func (s *service) restore(snap snapshot) {
	s.ledger.Restore(snap.ledger)
	s.tracker.Restore(snap.stats)
}

// load restores the persisted collection. Absent or undecodable data starts
// an empty collection; a store that cannot be read at all is an error, so a
// later write never overwrites state it failed to see.
func (s *service) load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	items, err := s.readItems(ctx)
	if err != nil {
		return err
	}
	s.ledger.Load(items)

	var saved domain.UserStats
	found, err := s.readValue(ctx, s.statsKey, &saved)
	if err != nil {
		return err
	}
	if found {
		s.tracker.Restore(saved)
	} else {
		s.tracker.Restore(stats.Recompute(s.ledger.Items(), s.cfg.StartingCoins))
		if s.ledger.Len() > 0 {
			log.Info(LogMsgStatsRecomputed, LogFieldItems, s.ledger.Len())
		}
	}

	log.Info(LogMsgStateLoaded,
		LogFieldVariant, s.cfg.Variant,
		LogFieldItems, s.ledger.Len(),
		LogFieldCoins, s.tracker.Stats().Coins)
	return nil
}

func (s *service) readItems(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	found, err := s.readValue(ctx, s.itemsKey, &items)
	if err != nil || !found {
		return nil, err
	}
	return items, nil
}

// readValue decodes key into v. It reports found=false for absent or
// corrupt values and only errors when the store itself fails.
func (s *service) readValue(ctx context.Context, key string, v interface{}) (bool, error) {
	log := logger.FromContext(ctx)

	data, err := s.store.Get(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		log.Info(LogMsgStateAbsent, LogFieldKey, key)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := s.codec.Unmarshal(data, v); err != nil {
		log.Warn(LogMsgStateCorrupt, LogFieldKey, key, LogFieldError, err)
		return false, nil
	}
	return true, nil
}

// persist writes the whole collection. On failure the in-memory state goes
// back to snap and the store is rewritten from it on a best-effort basis.
func (s *service) persist(ctx context.Context, snap snapshot) error {
	err := s.write(ctx, s.ledger.Items(), s.tracker.Stats())
	if err == nil {
		return nil
	}

	log := logger.FromContext(ctx)
	s.restore(snap)
	log.Error(LogMsgPersistFailed, LogFieldError, err)
	if rerr := s.write(ctx, s.ledger.Items(), s.tracker.Stats()); rerr != nil {
		log.Error(LogMsgRestoreStoreFailed, LogFieldError, rerr)
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
}

func (s *service) write(ctx context.Context, items []domain.Item, st domain.UserStats) error {
	itemData, err := s.codec.Marshal(items)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeStateFailed, err)
	}
	statsData, err := s.codec.Marshal(st)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeStateFailed, err)
	}

	if err := s.store.Set(ctx, s.itemsKey, itemData); err != nil {
		return err
	}
	return s.store.Set(ctx, s.statsKey, statsData)
}
