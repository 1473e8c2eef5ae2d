package task

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Share-link payload: the task list as JSON, UTF-8, then unpadded base64url.

var errEmptyPayload = errors.New("empty task payload")

// Encode serializes tasks for embedding in a share link. An empty list
// encodes to the empty string.
func Encode(tasks []Task) string {
	if len(tasks) == 0 {
		return ""
	}
	b, _ := json.Marshal(tasks)
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode reverses Encode. The empty string decodes to an empty list; any
// malformed input (bad base64, invalid JSON, non-array or empty payload,
// broken records) fails as a whole.
func Decode(encoded string) ([]Task, error) {
	if encoded == "" {
		return nil, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode share payload: %w", err)
	}
	tasks, err := decodeRecords(b, time.Now())
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, errEmptyPayload
	}
	return tasks, nil
}

// record is the tolerant wire/persisted shape: older payloads may lack
// createdAt and initialDaysOffset.
type record struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	IntervalDays      int    `json:"intervalDays"`
	LastCompleted     int64  `json:"lastCompleted"`
	CreatedAt         *int64 `json:"createdAt"`
	InitialDaysOffset *int   `json:"initialDaysOffset"`
}

// decodeRecords parses a JSON task array, backfilling missing fields:
// createdAt from lastCompleted (or now), initialDaysOffset from
// intervalDays. Structurally broken records fail the whole batch.
func decodeRecords(b []byte, now time.Time) ([]Task, error) {
	var recs []record
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("parse task list: %w", err)
	}
	out := make([]Task, 0, len(recs))
	for i, r := range recs {
		if r.ID == "" || r.Name == "" || r.IntervalDays <= 0 {
			return nil, fmt.Errorf("task record %d is invalid", i)
		}
		created := now.UnixMilli()
		if r.CreatedAt != nil {
			created = *r.CreatedAt
		} else if r.LastCompleted != 0 {
			created = r.LastCompleted
		}
		last := r.LastCompleted
		if last == 0 {
			last = created
		}
		offset := r.IntervalDays
		if r.InitialDaysOffset != nil && *r.InitialDaysOffset >= 0 {
			offset = *r.InitialDaysOffset
		}
		out = append(out, Task{
			ID:                r.ID,
			Name:              r.Name,
			IntervalDays:      r.IntervalDays,
			LastCompleted:     last,
			CreatedAt:         created,
			InitialDaysOffset: offset,
		})
	}
	return out, nil
}
