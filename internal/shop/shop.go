// Package shop holds a caller-owned collection of items and advances all of
// them by one day at a time.
package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/category"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
	"github.com/osse101/GildedRose_Go/internal/quality"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

// Shop applies the daily rules to every item it holds.
// The items are shared with the caller and updated in place.
type Shop struct {
	items []*domain.Item
}

// NewShop wraps the given items
func NewShop(items []*domain.Item) *Shop {
	return &Shop{items: items}
}

// Items returns the items held by the shop
func (s *Shop) Items() []*domain.Item {
	return s.items
}

// UpdateQuality advances every item by one day.
// Items are independent of each other: a nil entry does not stop the others
// from being updated, and every failure is reported in the returned error.
func (s *Shop) UpdateQuality(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var errs []error
	for i, item := range s.items {
		if err := updateOne(ctx, i, item); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	metrics.DaysSimulated.Inc()
	log.Debug(LogMsgDayAdvanced, "items", len(s.items))
	return nil
}

// UpdateQualityConcurrent advances every item by one day using the given
// number of workers. Each item is touched by exactly one worker. Items and
// errors end up as UpdateQuality would leave them.
func (s *Shop) UpdateQualityConcurrent(ctx context.Context, workers int) error {
	log := logger.FromContext(ctx)

	pool := worker.NewPool(workers, len(s.items))
	pool.Start(ctx)
	for i, item := range s.items {
		pool.Enqueue(worker.JobFunc(func(ctx context.Context) error {
			return updateOne(ctx, i, item)
		}))
	}
	if err := pool.Wait(); err != nil {
		return err
	}

	metrics.DaysSimulated.Inc()
	log.Debug(LogMsgDayAdvanced, "items", len(s.items), "workers", workers)
	return nil
}

func updateOne(ctx context.Context, index int, item *domain.Item) error {
	cats, err := category.Of(item)
	if err != nil {
		return fmt.Errorf(ErrFmtUpdateItemFailed, index, err)
	}
	if err := quality.Apply(item, cats); err != nil {
		return fmt.Errorf(ErrFmtUpdateItemFailed, index, err)
	}

	metrics.ItemsUpdated.WithLabelValues(cats.Label()).Inc()
	if item.Quality < 0 {
		metrics.NegativeQuality.Inc()
		logger.FromContext(ctx).Warn(LogMsgNegativeQuality,
			"item", item.Name,
			"sell_in", item.SellIn,
			"quality", item.Quality)
	}
	return nil
}
