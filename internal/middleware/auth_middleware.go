package middleware

import (
	"context"
	"strings"

	"taskflow/internal/apperror"
	"taskflow/internal/auth"
	"taskflow/internal/model"
	"taskflow/internal/respond"
	"taskflow/internal/translator"

	"github.com/gin-gonic/gin"
)

const (
	IdentityKey = "identity"
	UserKey     = "user"
)

var (
	errAuthHeaderRequired = apperror.New(apperror.CodeUnauthenticated, apperror.MsgAuthHeaderRequired)
	errInvalidAuthHeader  = apperror.New(apperror.CodeUnauthenticated, apperror.MsgInvalidAuthHeader)
	errInvalidToken       = apperror.New(apperror.CodeUnauthenticated, apperror.MsgInvalidOrExpiredJWT)
)

type TokenParser interface {
	ParseToken(tokenStr string) (auth.Identity, error)
}

// JWTAuthMiddleware verifies the bearer token and stores its auth.Identity under IdentityKey.
func JWTAuthMiddleware(tokens TokenParser, tr *translator.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respond.Abort(c, tr, errAuthHeaderRequired)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			respond.Abort(c, tr, errInvalidAuthHeader)
			return
		}

		identity, err := tokens.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			respond.Abort(c, tr, errInvalidToken.Wrap(err))
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

type UserResolver interface {
	ResolveOrCreate(ctx context.Context, id auth.Identity) (*model.User, error)
}

// CurrentUserMiddleware maps the request identity to its directory user, creating it on
// first sight, and stores it under UserKey.
func CurrentUserMiddleware(users UserResolver, tr *translator.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, _ := c.Get(IdentityKey)
		identity, ok := value.(auth.Identity)
		if !ok {
			respond.Abort(c, tr, apperror.ErrUnauthenticated)
			return
		}

		user, err := users.ResolveOrCreate(c.Request.Context(), identity)
		if err != nil {
			respond.Abort(c, tr, err)
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(UserKey, user)
}

// CurrentUser returns the acting user set by CurrentUserMiddleware.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok && user != nil
}
