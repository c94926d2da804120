package models

import "time"

// Detection is one ranked match in a scan result: a condition identifier,
// its display name, and an independent probability in [0,1]. Probabilities
// across a record are independent detections and need not sum to 1.
type Detection struct {
	ConditionID string  `json:"id"`
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
}

// ScanRecord is one completed analysis: the captured image, the ranked
// condition list, and metadata. Records are constructed atomically; after
// creation only Notes may change.
type ScanRecord struct {
	ID       string      `json:"id"`
	UserID   string      `json:"userId"`
	ImageURI string      `json:"imageUri"`
	Date     time.Time   `json:"date"`
	Diseases []Detection `json:"diseases"`
	Notes    string      `json:"notes,omitempty"`
}

// Clone returns a deep copy of the record so callers can hold it without
// aliasing store-internal state.
func (r ScanRecord) Clone() ScanRecord {
	c := r
	c.Diseases = append([]Detection(nil), r.Diseases...)
	return c
}
