package utils

import (
	"github.com/Atsuyko/restaurant/entity"
	"github.com/gin-gonic/gin"
)

const userKey = "user"

// SetCurrentUser attaches the resolved principal to the request context.
func SetCurrentUser(c *gin.Context, user *entity.User) {
	c.Set(userKey, user)
}

// CurrentUser returns the principal resolved by the auth middleware,
// or nil when the request carried no usable credential.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, ok := v.(*entity.User)
	if !ok {
		return nil
	}
	return user
}
