package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id path segment. A non-numeric id can never match
// a record, so callers answer NotFound.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return uint(id), true
}
