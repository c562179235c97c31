// Package boltdb реализует локальное хранилище клиента поверх BoltDB.
package boltdb

import (
	"context"
	"os"

	"fmt"

	"go.etcd.io/bbolt"

	"github.com/alawein/labsync/internal/client/storage"
)

var (
	// BoltDB bucket names: по одному на локальную коллекцию плюс
	// очередь синхронизации и служебные метаданные
	bucketSimulations = []byte("simulations")
	bucketResults     = []byte("results")
	bucketSettings    = []byte("settings")
	bucketSyncQueue   = []byte("syncQueue")
	bucketMetadata    = []byte("metadata")
)

// Option настраивает Storage при создании
type Option func(*Storage)

// WithQuotaBytes задает бюджет хранилища для StorageQuota.
// Нулевой бюджет означает "бюджет неизвестен".
func WithQuotaBytes(n int64) Option {
	return func(s *Storage) {
		s.quotaBytes = n
	}
}

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db         *bbolt.DB
	dbPath     string
	quotaBytes int64
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string, opts ...Option) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db, dbPath: dbPath}
	for _, opt := range opts {
		opt(s)
	}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{
			bucketSimulations,
			bucketResults,
			bucketSettings,
			bucketSyncQueue,
			bucketMetadata,
		} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// StorageQuota returns best-effort storage usage.
// Used это размер файла БД, Total это настроенный лимит. Любая
// невозможность оценить использование деградирует в нулевую квоту,
// а не в ошибку.
func (s *Storage) StorageQuota(ctx context.Context) (*storage.Quota, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	info, err := os.Stat(s.dbPath)
	if err != nil {
		// Платформа не дала оценку - возвращаем нули
		return &storage.Quota{}, nil
	}

	quota := &storage.Quota{
		Used:  info.Size(),
		Total: s.quotaBytes,
	}
	if quota.Total > 0 {
		quota.Percentage = float64(quota.Used) / float64(quota.Total) * 100
	}

	return quota, nil
}

// collectionBucket возвращает имя bucket для типа сущности
func collectionBucket(collection string) []byte {
	switch collection {
	case "simulations":
		return bucketSimulations
	case "results":
		return bucketResults
	default:
		return bucketSettings
	}
}
