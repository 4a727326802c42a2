package model

import (
	"encoding/json"
	"time"
)

// CacheEntry is a stored value with the time it was written
type CacheEntry struct {
	Payload   json.RawMessage
	WrittenAt time.Time
}
