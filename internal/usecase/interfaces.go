package usecase

import "context"

// AuthClient is the slice of the identity provider the usecases need:
// keeping the custom-claim cache in sync with document roles. Token
// verification lives in the HTTP middleware.
type AuthClient interface {
	SetCustomClaims(ctx context.Context, uid string, claims map[string]interface{}) error
}
