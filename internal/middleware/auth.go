package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/TableBooker/internal/auth"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

// Authenticate resolves the bearer token, if any, into a domain.Actor.
// Requests without a token continue as anonymous; a bad token is rejected.
// The token may also come in the "token" query parameter, which browsers
// need for WebSocket upgrades.
func Authenticate(secret []byte) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := auth.Parse(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token", "code": "unauthorized"},
			)
			return
		}

		c.Set(actorKey, claims.Actor())
		c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if Actor(c).Anonymous() {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required", "code": "unauthorized"},
			)
			return
		}
		c.Next()
	}
}

// Actor returns the authenticated principal, or the anonymous actor.
func Actor(c *ginext.Context) domain.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(domain.Actor); ok {
			return actor
		}
	}
	return domain.Actor{}
}

// WithActor stores the actor on the context; used by tests and internal callers.
func WithActor(c *ginext.Context, actor domain.Actor) {
	c.Set(actorKey, actor)
}

func bearerToken(c *ginext.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return c.Query("token")
}
