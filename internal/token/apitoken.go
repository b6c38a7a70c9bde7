package token

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// apiTokenPayload is the JSON envelope carried by an API token.
type apiTokenPayload struct {
	UserID string `json:"userId"`
}

// EncodeAPIToken encodes a user ID into a bearer token for the API-testing
// channel. The token is a base64 JSON envelope with no signature and no
// expiry: anyone can mint one for any user ID. It exists for local API
// testing and demo parity only; browser sessions go through signed,
// server-verified session tokens instead.
func EncodeAPIToken(userID uuid.UUID) string {
	payload, _ := json.Marshal(apiTokenPayload{UserID: userID.String()})
	return base64.StdEncoding.EncodeToString(payload)
}

// DecodeAPIToken extracts the user ID from an API token. No signature or
// expiry is checked. Any decode failure is reported as an error so callers
// can fall through to another credential channel.
func DecodeAPIToken(tokenString string) (uuid.UUID, error) {
	raw, err := base64.StdEncoding.DecodeString(tokenString)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to decode api token: %w", err)
	}

	var payload apiTokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal api token: %w", err)
	}
	if payload.UserID == "" {
		return uuid.Nil, fmt.Errorf("api token has no userId")
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("api token userId is not a valid id: %w", err)
	}

	return userID, nil
}
