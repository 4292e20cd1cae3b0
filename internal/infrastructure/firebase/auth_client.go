package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"moment/internal/domain/policy"
)

// AuthClient wraps the Firebase Admin auth client. Verification yields a
// policy.Principal; claim writes keep the token cache in sync with the role
// stored on the user document.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

func (f *AuthClient) VerifyToken(ctx context.Context, idToken string) (*policy.Principal, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	return principalFromClaims(token.UID, token.Claims), nil
}

func (f *AuthClient) SetCustomClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	return f.client.SetCustomUserClaims(ctx, uid, claims)
}

func principalFromClaims(uid string, claims map[string]interface{}) *policy.Principal {
	return &policy.Principal{
		UID:      uid,
		Admin:    boolClaim(claims, "admin"),
		Provider: boolClaim(claims, "provider"),
	}
}

func boolClaim(claims map[string]interface{}, name string) bool {
	value, ok := claims[name].(bool)
	return ok && value
}
