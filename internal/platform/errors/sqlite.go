package errors

// SQLite-specific helpers mirroring pg.go for the single-file backend

import (
	stderrs "errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ExtractSQLiteError returns (sqlite3.Error, true) if err wraps a driver error
func ExtractSQLiteError(err error) (sqlite3.Error, bool) {
	var se sqlite3.Error
	if err != nil && stderrs.As(err, &se) {
		return se, true
	}
	return sqlite3.Error{}, false
}

// IsSQLiteUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY constraint failure
func IsSQLiteUniqueViolation(err error) bool {
	se, ok := ExtractSQLiteError(err)
	if !ok {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
		se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

func isSQLiteBusy(err error) bool {
	se, ok := ExtractSQLiteError(err)
	return ok && (se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked)
}

// SQLiteErrorCode maps a driver error to an ErrorCode with an ok flag
func SQLiteErrorCode(err error) (ErrorCode, bool) {
	se, ok := ExtractSQLiteError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch se.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ErrorCodeDuplicateKey, true
	case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
		return ErrorCodeValidation, true
	case sqlite3.ErrConstraintForeignKey:
		return ErrorCodeInvalidArgument, true
	}
	switch se.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrReadonly:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromSQLitef wraps a sqlite error with a mapped ErrorCode and formatted message
func FromSQLitef(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	if code, ok := SQLiteErrorCode(err); ok {
		return Wrap(err, code, fmt.Sprintf(format, a...))
	}
	return Wrap(err, ErrorCodeDB, fmt.Sprintf(format, a...))
}
