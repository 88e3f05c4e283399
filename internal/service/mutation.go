package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Skotchmaster/dummyjson/internal/query"
)

// DeletedOnLayout is the ISO-8601 form used for deletedOn.
const DeletedOnLayout = "2006-01-02T15:04:05.000Z07:00"

// overlay copies the top-level fields of body onto rec. id is never
// overwritten and nested objects are replaced as a whole.
func overlay[T any](rec T, body map[string]any) (T, error) {
	var out T

	raw, err := json.Marshal(rec)
	if err != nil {
		return out, fmt.Errorf("encode record: %w: %v", ErrComputation, err)
	}
	merged := map[string]any{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return out, fmt.Errorf("decode record: %w: %v", ErrComputation, err)
	}

	for k, v := range body {
		if k == query.IDField {
			continue
		}
		merged[k] = v
	}

	raw, err = json.Marshal(merged)
	if err != nil {
		return out, fmt.Errorf("encode overlay: %w: %v", ErrComputation, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode overlay: %w: %v", ErrComputation, err)
	}
	return out, nil
}

func deletedView(s *query.Schema, rec any, now time.Time) map[string]any {
	m := s.Map(rec, nil)
	m["isDeleted"] = true
	m["deletedOn"] = now.UTC().Format(DeletedOnLayout)
	return m
}

func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}
