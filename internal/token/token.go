package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/livekit/protocol/auth"

	"viewer-token/internal/config"
)

const (
	// TokenTTL is how long a minted token stays valid.
	TokenTTL = 24 * time.Hour

	// ClockSkewGrace backdates nbf so the token is usable immediately even
	// when the receiving server's clock runs slightly ahead.
	ClockSkewGrace = 5 * time.Second
)

// ViewerClaims is the signed payload: the LiveKit video grant plus the
// registered JWT claims.
type ViewerClaims struct {
	Name  string           `json:"name,omitempty"`
	Video *auth.VideoGrant `json:"video,omitempty"`
	jwt.RegisteredClaims
}

// Mint signs a read-only join token for the configured room: joining and
// subscribing are allowed, publishing media or data is not. The token id is
// derived from the issue time, so two tokens minted within the same second
// share an id. Good enough for a throwaway viewer credential.
func Mint(cfg *config.Config, now time.Time) (string, error) {
	allow := true
	deny := false

	claims := &ViewerClaims{
		Name: cfg.ViewerName,
		Video: &auth.VideoGrant{
			Room:           cfg.RoomName,
			RoomJoin:       true,
			CanSubscribe:   &allow,
			CanPublish:     &deny,
			CanPublishData: &deny,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.APIKey,
			Subject:   cfg.ViewerIdentity,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-ClockSkewGrace)),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			ID:        fmt.Sprintf("viewer-%d", now.Unix()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.APISecret))
}
