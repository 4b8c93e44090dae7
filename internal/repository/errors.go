package repository

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
	pgLockNotAvailable    = "55P03"
	pgInvalidText         = "22P02"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

func isLockTimeout(err error) bool {
	return pgCode(err) == pgLockNotAvailable
}

func isInvalidText(err error) bool {
	return pgCode(err) == pgInvalidText
}
