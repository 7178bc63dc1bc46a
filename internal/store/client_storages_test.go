package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cart-keeper/internal/config"
	"github.com/MKhiriev/go-cart-keeper/internal/logger"
)

func TestNewClientStorages_ReopenKeepsData(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "cart.db")
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: dsn}}

	first, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.CartRepository.SetCartQuantity(testContext(), testProduct(1, "a", "1"), 4))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	qty, err := second.CartRepository.GetCartQuantity(testContext(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), qty)
}

func TestNewClientStorages_Unavailable(t *testing.T) {
	// a directory cannot be opened as a database file
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: t.TempDir()}}

	_, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
