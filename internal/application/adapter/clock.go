// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time for default dates and payment stamps.
// Kept behind an interface so tests can pin time.
type Clock interface {
	Now() time.Time
}
