package boltdb

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/aurimasv/vitrina/internal/client/storage"
)

var keyBackupSnapshot = []byte("snapshot")

// SaveBackup stores the serialized snapshot
func (s *Storage) SaveBackup(ctx context.Context, data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBackup).Put(keyBackupSnapshot, data)
	})
}

// GetBackup retrieves the serialized snapshot
func (s *Storage) GetBackup(ctx context.Context) ([]byte, error) {
	var data []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		stored := tx.Bucket(bucketBackup).Get(keyBackupSnapshot)
		if stored == nil {
			return storage.ErrNoBackup
		}
		// the slice is only valid inside the transaction
		data = make([]byte, len(stored))
		copy(data, stored)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// DeleteBackup removes the stored snapshot
func (s *Storage) DeleteBackup(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBackup).Delete(keyBackupSnapshot)
	})
}
