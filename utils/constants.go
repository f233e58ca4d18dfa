// File: utils/constants.go
package utils

import "time"

// BookingSessionPrefix is the prefix used for Redis booking session keys.
const BookingSessionPrefix = "bookingSession:"

// AdminSessionPrefix is the prefix used for Redis admin session keys.
const AdminSessionPrefix = "adminSession:"

// SubmitLockPrefix is the prefix used for Redis booking submission locks.
const SubmitLockPrefix = "submitLock:"

// SubmitLockTTL bounds how long a confirmation can hold the submit lock.
const SubmitLockTTL = 30 * time.Second

// AdminSessionTTL is the time-to-live for admin sessions.
const AdminSessionTTL = 12 * time.Hour
