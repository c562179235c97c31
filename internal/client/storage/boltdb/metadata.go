package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	keyLastSyncTime = "last_sync_time"
)

// SaveLastSyncTime saves the completion time of the last successful drain
func (s *Storage) SaveLastSyncTime(ctx context.Context, ts time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем unix-время в bytes
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(ts.Unix()))

		if err := bucket.Put([]byte(keyLastSyncTime), buf); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSyncTime retrieves the completion time of the last successful drain.
// Returns the zero time if no drain has completed yet.
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	var ts time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get([]byte(keyLastSyncTime))
		if buf == nil {
			// Синхронизация еще не выполнялась
			return nil
		}

		ts = time.Unix(int64(binary.BigEndian.Uint64(buf)), 0)
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return ts, nil
}
