package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/alawein/labsync/internal/client/storage"
	"github.com/alawein/labsync/internal/models"
)

// SaveQueueItem stores or re-persists a queue item (upsert by ID)
func (s *Storage) SaveQueueItem(ctx context.Context, item *models.SyncQueueItem) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal queue item: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncQueue)
		if bucket == nil {
			return fmt.Errorf("sync queue bucket not found")
		}

		if err := bucket.Put([]byte(item.ID), data); err != nil {
			return fmt.Errorf("failed to save queue item: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetQueueItems returns all queued items.
// Порядок не определен: сортировку по приоритету выполняет координатор.
func (s *Storage) GetQueueItems(ctx context.Context) ([]*models.SyncQueueItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var items []*models.SyncQueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncQueue)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var item models.SyncQueueItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}
			items = append(items, &item)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get queue items: %w", err)
	}

	return items, nil
}

// RemoveQueueItem removes an item.
// Идемпотентна: удаление отсутствующего элемента не является ошибкой.
func (s *Storage) RemoveQueueItem(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncQueue)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(id))
	})

	if err != nil {
		return fmt.Errorf("remove transaction failed: %w", err)
	}

	return nil
}

// CountQueueItems returns the number of queued items
func (s *Storage) CountQueueItems(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncQueue)
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count queue items: %w", err)
	}

	return count, nil
}
