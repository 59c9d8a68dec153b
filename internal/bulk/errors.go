package bulk

import "errors"

var (
	ErrNoValidData    = errors.New("tidak ada data valid yang ditemukan dalam file")
	ErrUnreadableFile = errors.New("format file tidak didukung atau rusak")
	ErrInvalidBackup  = errors.New("file backup tidak valid")
)
