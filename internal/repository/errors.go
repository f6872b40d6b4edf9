package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Error taxonomy surfaced by every repository. Callers branch with errors.Is;
// the underlying engine error stays wrapped for logging.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("duplicate value for a unique column")
	ErrForeignKey      = errors.New("referenced row does not exist")
	ErrStillReferenced = errors.New("row is still referenced by dependent rows")
	ErrRequired        = errors.New("required column missing")
	ErrDomain          = errors.New("value outside the column's allowed set")
)

// MySQL server error numbers for constraint failures.
const (
	mysqlErrDupEntry        = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
	mysqlErrBadNullColumn   = 1048
	mysqlErrNoDefault       = 1364
	mysqlErrCheckViolated   = 3819
)

// translate maps engine errors onto the repository error taxonomy. GORM's
// TranslateError setting covers the common cases across drivers; the MySQL
// error-number switch catches what the translation layer does not, and the
// message checks cover the in-memory SQLite engine used by the tests, which
// reports constraint failures as flat messages.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return ErrDomain
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDupEntry:
			return ErrDuplicate
		case mysqlErrRowIsReferenced, mysqlErrNoReferencedRow:
			return ErrForeignKey
		case mysqlErrBadNullColumn, mysqlErrNoDefault:
			return ErrRequired
		case mysqlErrCheckViolated:
			return ErrDomain
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicate
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrForeignKey
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return ErrRequired
	case strings.Contains(msg, "CHECK constraint failed"):
		return ErrDomain
	}
	return err
}

// translateDelete is translate for delete paths, where a foreign key
// violation means dependents still point at the row being removed.
func translateDelete(err error) error {
	err = translate(err)
	if errors.Is(err, ErrForeignKey) {
		return ErrStillReferenced
	}
	return err
}
