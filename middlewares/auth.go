package middlewares

import (
	"strings"

	"github.com/Atsuyko/restaurant/repository"
	"github.com/Atsuyko/restaurant/utils"
	"github.com/gin-gonic/gin"
)

// Identify resolves the bearer API token into a principal and stores it
// in the request context. It never aborts: the account endpoints answer
// 404 themselves when no principal resolved, so an absent or invalid
// token just leaves the context empty.
func Identify(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.Next()
			return
		}
		token := strings.TrimPrefix(h, "Bearer ")

		user, err := users.FindByToken(token)
		if err != nil {
			c.Next()
			return
		}

		utils.SetCurrentUser(c, user)
		c.Next()
	}
}
