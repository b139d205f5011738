package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const SessionKey = "cart_session"

const sessionCookie = "cart_session"

// Session identifies the browsing session that owns the cart. A guest without
// the cookie gets a fresh uuid; no account is involved.
func Session(maxAgeSeconds int) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(sessionCookie, id, maxAgeSeconds, "/", "", false, true)
		}

		c.Set(SessionKey, id)

		c.Next()
	}
}
