package uid

import "github.com/google/uuid"

// NewMatchID returns a random identifier that tags the logs and events of one
// match.
func NewMatchID() string {
	return uuid.NewString()
}
