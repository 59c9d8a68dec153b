package usecase

import "errors"

var (
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrInvalidInput       = errors.New("data tidak valid")
	ErrDuplicate          = errors.New("data sudah ada")
	ErrForbidden          = errors.New("akses ditolak")
	ErrInvalidCredentials = errors.New("Username atau Password salah!")
)
