package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

// newTestStorage открывает временное хранилище и закрывает его после теста
func newTestStorage(t *testing.T, opts ...Option) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "labsync-client.db")
	store, err := New(context.Background(), dbPath, opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что все бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSimulations, bucketResults, bucketSettings, bucketSyncQueue, bucketMetadata} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	ctx := context.Background()
	// Путь с нулевым символом даст ошибку открытия
	invalidPath := string([]byte{0})
	store, err := New(ctx, invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	err = store.Close()
	assert.NoError(t, err)
	assert.Nil(t, store.db)

	// Повторный Close ничего не делает
	err = store.Close()
	assert.NoError(t, err)

	// Операции над закрытым хранилищем возвращают ErrStorageClosed
	_, err = store.GetQueueItems(context.Background())
	assert.Error(t, err)
}

func TestStorageQuota(t *testing.T) {
	store := newTestStorage(t, WithQuotaBytes(1<<20))

	quota, err := store.StorageQuota(context.Background())
	require.NoError(t, err)
	require.NotNil(t, quota)

	// Файл BoltDB не пустой сразу после создания бакетов
	assert.Positive(t, quota.Used)
	assert.Equal(t, int64(1<<20), quota.Total)
	assert.Positive(t, quota.Percentage)
}

func TestStorageQuota_NoBudget(t *testing.T) {
	store := newTestStorage(t)

	quota, err := store.StorageQuota(context.Background())
	require.NoError(t, err)

	// Без настроенного бюджета процент не считается
	assert.Zero(t, quota.Total)
	assert.Zero(t, quota.Percentage)
}

func TestStorageQuota_MissingFile(t *testing.T) {
	store := newTestStorage(t)

	// Файл пропал из-под хранилища - квота деградирует в нули, не в ошибку
	store.dbPath = filepath.Join(t.TempDir(), "does-not-exist.db")

	quota, err := store.StorageQuota(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), quota.Used)
	assert.Equal(t, int64(0), quota.Total)
	assert.Equal(t, float64(0), quota.Percentage)
}
