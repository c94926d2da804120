package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUser_Apply(t *testing.T) {
	u := User{ID: "1", Email: "a@x.com", Name: "Alice", Phone: "111"}

	got := u.Apply(ProfileUpdate{Name: strPtr("Alicia"), BirthDate: strPtr("2000-01-02")})

	assert.Equal(t, "Alicia", got.Name)
	assert.Equal(t, "2000-01-02", got.BirthDate)
	// untouched fields keep their values
	assert.Equal(t, "111", got.Phone)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "a@x.com", got.Email)
	// receiver is unchanged
	assert.Equal(t, "Alice", u.Name)
}

func TestUser_Apply_Empty(t *testing.T) {
	u := User{ID: "1", Email: "a@x.com", Name: "Alice"}
	assert.Equal(t, u, u.Apply(ProfileUpdate{}))
}

func TestScanRecord_Clone(t *testing.T) {
	r := ScanRecord{
		ID:       "42",
		UserID:   "1",
		Diseases: []Detection{{ConditionID: "acne", Name: "Acne", Probability: 0.8}},
	}

	c := r.Clone()
	c.Diseases[0].Probability = 0.1

	assert.Equal(t, 0.8, r.Diseases[0].Probability)
}

func TestSessionSnapshot_JSONShape(t *testing.T) {
	b, err := json.Marshal(SessionSnapshot{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":null,"isAuthenticated":false}`, string(b))

	b, err = json.Marshal(SessionSnapshot{
		User:            &User{ID: "1", Email: "a@x.com", Name: "Alice"},
		IsAuthenticated: true,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":{"id":"1","email":"a@x.com","name":"Alice"},"isAuthenticated":true}`, string(b))
}

func TestScanRecord_DateIsISO8601(t *testing.T) {
	r := ScanRecord{Date: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)}
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"date":"2025-06-01T12:30:00Z"`)
}
