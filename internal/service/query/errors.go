package query

import "errors"

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrShowNotFound  = errors.New("show not found")
)
