package models

import (
	"encoding/json"
	"fmt"
)

// EncodeLog serializes the whole log as a JSON array in list order.
// An empty or nil log encodes as "[]".
func EncodeLog(entries []Entry) (string, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("encode workout log: %w", err)
	}
	return string(data), nil
}

// DecodeLog parses a value written by EncodeLog. Entries are taken as stored
// and are not re-validated.
func DecodeLog(raw string) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
