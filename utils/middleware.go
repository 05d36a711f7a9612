package utils

import (
	"github.com/parkerholladay/odyssey-voyage-II-server/core"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// IdentityMiddleware copies the verified access token claims into the
// request values so handlers can build the actor identity without touching
// the JWT layer.
func IdentityMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	ctx.Values().Set("userID", claims.ID)
	ctx.Values().Set("userRole", claims.Role)
	ctx.Next()
}

// IdentityFromContext rebuilds the actor identity set by IdentityMiddleware.
// Routes outside the authenticated party get the anonymous identity.
func IdentityFromContext(ctx iris.Context) core.Identity {
	id := core.Identity{}
	if v := ctx.Values().Get("userID"); v != nil {
		if userID, ok := v.(uint); ok {
			id.UserID = userID
		}
	}
	if v := ctx.Values().Get("userRole"); v != nil {
		if role, ok := v.(string); ok {
			id.Role = role
		}
	}
	return id
}
