package pattern

import "github.com/google/uuid"

// UUIDString matches strings that are valid RFC 4122 UUIDs in any of the
// formats uuid.Validate accepts (canonical, braced, urn-prefixed, raw
// hex).
func UUIDString() Matcher {
	return stringWhen(func(s string) bool {
		return uuid.Validate(s) == nil
	})
}
