package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup matches no rows.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned on unique constraint violations.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrConnection is returned when the storage cannot be reached.
	ErrConnection = errors.New("database connection failed")
)

// Duplicate key codes. 11000 and 11001 are the conventional document store codes
// and are accepted alongside the codes reported by the SQL drivers.
const (
	CodeDuplicateKey       = 11000
	CodeDuplicateKeyUpdate = 11001
	CodeMySQLDuplicate     = 1062
	CodePostgresUnique     = 23505
	CodeSQLiteUnique       = 2067
)

// IsDuplicateCode reports whether code signals a uniqueness violation.
func IsDuplicateCode(code int) bool {
	switch code {
	case CodeDuplicateKey, CodeDuplicateKeyUpdate, CodeMySQLDuplicate, CodePostgresUnique, CodeSQLiteUnique:
		return true
	}
	return false
}

// DuplicateKeyError reports which unique field collided.
type DuplicateKeyError struct {
	// Field is the colliding column, empty when the driver message does not name it.
	Field string
	// Code is the driver specific error code.
	Code int
	Err  error
}

func (e *DuplicateKeyError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("duplicate key: %s already exists", e.Field)
	}
	return "duplicate key"
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }
func (e *DuplicateKeyError) Unwrap() error        { return e.Err }

// ConnectionError wraps a failure to open or ping the database.
type ConnectionError struct {
	Driver string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrConnection, e.Driver, e.Err)
}

func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }
func (e *ConnectionError) Unwrap() error        { return e.Err }

// IsDuplicateKey reports whether err is a uniqueness violation.
func IsDuplicateKey(err error) bool { return errors.Is(err, ErrDuplicateKey) }

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// MapError translates driver and gorm errors into the package errors.
// Unknown errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrNotFound) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var me *mysql.MySQLError
	if errors.As(err, &me) && IsDuplicateCode(int(me.Number)) {
		return &DuplicateKeyError{Field: fieldFromMessage(me.Message), Code: int(me.Number), Err: err}
	}

	var pe *pgconn.PgError
	if errors.As(err, &pe) && pe.Code == "23505" {
		field := fieldFromMessage(pe.ConstraintName)
		if field == "" {
			field = fieldFromMessage(pe.Detail)
		}
		return &DuplicateKeyError{Field: field, Code: CodePostgresUnique, Err: err}
	}

	// The sqlite driver reports constraint failures through its message.
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return &DuplicateKeyError{Field: fieldFromMessage(err.Error()), Code: CodeSQLiteUnique, Err: err}
	}

	return err
}

// uniqueFields lists the columns backed by a unique index.
var uniqueFields = []string{"email", "name"}

func fieldFromMessage(msg string) string {
	msg = strings.ToLower(msg)
	for _, f := range uniqueFields {
		if strings.Contains(msg, "_"+f) || strings.Contains(msg, "."+f) || strings.Contains(msg, "("+f+")") {
			return f
		}
	}
	return ""
}
