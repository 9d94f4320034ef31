// Package uuid mints the time-ordered identifiers shared by installment
// batch siblings.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a UUIDv7 string. The time-ordered layout keeps identifiers
// minted together adjacent in index scans. Falls back to a random v4 when
// the entropy source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}
