// Package timezone provides timezone utilities for the application.
//
// Reservation dates are plain calendar dates and never pass through
// this package; it backs audit timestamps (created_at / modified_at)
// and their formatting in API responses.
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is initialized when the package is imported. Use standard IANA
// timezone database names ("UTC", "Asia/Jakarta", "Europe/London").
package timezone
