package firebase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// TokenVerifier checks Firebase ID tokens. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Identity is the part of a verified ID token the backend cares about
type Identity struct {
	UID   string
	Email string
	Name  string
}

// NewTokenVerifier initializes the Firebase app from a service account file.
// An empty path disables Firebase login and returns a nil verifier.
func NewTokenVerifier(ctx context.Context, credentialsPath string) (TokenVerifier, error) {
	if credentialsPath == "" {
		log.Println("Firebase credentials path not provided, Firebase login disabled.")
		return nil, nil
	}

	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("Firebase credentials file not found at %s", credentialsPath)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	log.Println("Firebase auth client initialized successfully!")
	return authClient, nil
}

// VerifyIdentity verifies idToken and extracts the user's identity. Tokens
// without an email claim are rejected since accounts are keyed by email.
func VerifyIdentity(ctx context.Context, v TokenVerifier, idToken string) (*Identity, error) {
	token, err := v.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("firebase token has no email claim")
	}
	name, _ := token.Claims["name"].(string)

	return &Identity{UID: token.UID, Email: email, Name: name}, nil
}
