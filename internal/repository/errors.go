package repository

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrForeignKey        = errors.New("referenced row does not exist")
	ErrInsufficientSeats = errors.New("not enough seats available")
)
