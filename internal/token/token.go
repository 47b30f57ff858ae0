// Package token implements the opaque session token format.
//
// Tokens look like "token_<userID>_<unixMillis>": the user id is recoverable
// and nothing is signed. This is a deliberate placeholder, not a credential
// design; callers must treat a parsed token as a claim to be verified against
// current user state.
package token

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const prefix = "token"

// ErrMalformed is returned when a token does not match the expected format.
var ErrMalformed = errors.New("malformed token")

// Mint encodes a session token for the given user issued at the given instant.
func Mint(userID uint, issuedAt time.Time) string {
	return prefix + "_" + strconv.FormatUint(uint64(userID), 10) + "_" +
		strconv.FormatInt(issuedAt.UnixMilli(), 10)
}

// Parse decodes a token back into the user id and issuance instant it encodes.
func Parse(raw string) (uint, time.Time, error) {
	parts := strings.Split(raw, "_")
	if len(parts) != 3 || parts[0] != prefix {
		return 0, time.Time{}, ErrMalformed
	}

	id, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil || id == 0 {
		return 0, time.Time{}, ErrMalformed
	}

	millis, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, time.Time{}, ErrMalformed
	}

	return uint(id), time.UnixMilli(millis).UTC(), nil
}
