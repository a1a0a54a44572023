package entity

import (
	"strconv"
	"time"
)

// IdempotencyKey records a processed submission so replayed requests
// return the original response instead of appending the ledger twice.
type IdempotencyKey struct {
	Key          string    `json:"key"`
	SessionID    string    `json:"session_id"`
	Endpoint     string    `json:"endpoint"`
	ResponseCode int       `json:"response_code"`
	ResponseBody string    `json:"response_body"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsExpired checks if the key has passed its expiry time.
func (k *IdempotencyKey) IsExpired() bool {
	return time.Now().After(k.ExpiresAt)
}

// IdempotencyKeyFromSheet decodes a persisted key. A malformed expiry
// decodes to the zero time, which reads as expired.
func IdempotencyKeyFromSheet(row SheetRow) IdempotencyKey {
	code, _ := strconv.Atoi(row["ResponseCode"])
	expires, _ := time.Parse(time.RFC3339, row["ExpiresAt"])
	return IdempotencyKey{
		Key:          row["Key"],
		SessionID:    row["SessionID"],
		Endpoint:     row["Endpoint"],
		ResponseCode: code,
		ResponseBody: row["ResponseBody"],
		ExpiresAt:    expires,
	}
}

// SheetRow encodes the key for persistence.
func (k IdempotencyKey) SheetRow() SheetRow {
	return SheetRow{
		"Key":          k.Key,
		"SessionID":    k.SessionID,
		"Endpoint":     k.Endpoint,
		"ResponseCode": strconv.Itoa(k.ResponseCode),
		"ResponseBody": k.ResponseBody,
		"ExpiresAt":    k.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
