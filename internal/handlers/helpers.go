package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// tolerant of how the middleware stored the value (int / int64 / float64 / string)
func getIntFromCtx(c *gin.Context, key string) (int, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, true
		}
	}
	return 0, false
}

func getUserID(c *gin.Context) (int, bool) {
	return getIntFromCtx(c, "user_id")
}
