package storage

import "errors"

var (
	// ErrAuthNotFound indicates the CLI has no stored session
	ErrAuthNotFound = errors.New("not authenticated")

	// ErrSettingsNotFound indicates company settings were never saved
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrNoBackup indicates no backup snapshot is stored locally
	ErrNoBackup = errors.New("no backup stored")
)
