// Package repository defines the persistence contract for the two record
// collections the service owns – reservations and blocked slots – and
// the sentinel errors shared by its backends. Higher layers depend only
// on the Store interface so that the flat-file, embedded-SQL and hosted-SQL
// backends remain interchangeable.
package repository

import "errors"

// ErrReservationNotFound is returned when a reservation id does not
// exist in the store. Handlers translate it into an HTTP 404.
var ErrReservationNotFound = errors.New("reservation not found")
