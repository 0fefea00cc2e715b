package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/pkg/errors"

	"github.com/deppfellow/tutoring-api/internal/server"
)

// clerkUserPrefix starts every Clerk user id. Profiles created with a
// generated id have no Clerk account.
const clerkUserPrefix = "user_"

type AuthService struct {
	server *server.Server
}

func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
	}
}

// DeleteUser deletes the Clerk user with the given id. Ids that are not
// Clerk user ids and users already gone are ignored.
func (a *AuthService) DeleteUser(ctx context.Context, userID string) error {
	if !strings.HasPrefix(userID, clerkUserPrefix) {
		return nil
	}

	_, err := user.Delete(ctx, userID)
	if err != nil {
		var apiErr *clerk.APIErrorResponse
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusNotFound {
			return nil
		}
		return errors.Wrapf(err, "failed to delete clerk user %s", userID)
	}

	a.server.Logger.Info().Str("user_id", userID).Msg("clerk user deleted")
	return nil
}
