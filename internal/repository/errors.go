package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrConflict    = errors.New("record conflicts with an existing one")
	ErrUnavailable = errors.New("store temporarily unavailable")
)

const pgUniqueViolation = "23505"

// classify maps driver and ORM errors onto the repository error kinds.
// Errors it does not recognise are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict), errors.Is(err, ErrUnavailable):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
		if isPgUnavailableCode(pgErr.Code) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}

	// A client that went away is not a store failure; keep it recognisable.
	if errors.Is(err, context.Canceled) {
		return err
	}

	if isConnectivityError(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return err
}

// isPgUnavailableCode covers connection exceptions (class 08), too many
// connections, and server shutdown states.
func isPgUnavailableCode(code string) bool {
	if strings.HasPrefix(code, "08") {
		return true
	}
	switch code {
	case "53300", "57P01", "57P02", "57P03":
		return true
	}
	return false
}

func isConnectivityError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
