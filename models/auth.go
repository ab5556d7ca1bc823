package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the bearer tokens that authorize course edits.
type Claims struct {
	Editor bool `json:"editor"`
	jwt.RegisteredClaims
}
