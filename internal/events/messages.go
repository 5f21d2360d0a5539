package events

import (
	"encoding/json"
	"time"
)

// StoreEvent describes one store mutation. Consumers re-read the store
// document themselves; the event carries identity only.
type StoreEvent struct {
	Store     string    `json:"store"`
	Action    string    `json:"action"`
	RecordID  string    `json:"record_id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewStoreEvent(store, action, recordID string) *StoreEvent {
	return &StoreEvent{
		Store:     store,
		Action:    action,
		RecordID:  recordID,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *StoreEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// StoreEventFromJSON creates an event from JSON bytes
func StoreEventFromJSON(data []byte) (*StoreEvent, error) {
	var e StoreEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
