package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pageParams parses limit/offset query params with the defaults every
// reference client assumes. Values that are not integers are rejected here;
// negative values pass through so the service layer owns that policy.
func pageParams(c *gin.Context) (limit, offset int, err error) {
	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err = strconv.Atoi(limitStr)
	if err != nil {
		return 0, 0, fmt.Errorf("limit must be an integer, got %q", limitStr)
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil {
		return 0, 0, fmt.Errorf("offset must be an integer, got %q", offsetStr)
	}
	return limit, offset, nil
}

func idParam(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("id must be a positive integer, got %q", idStr)
	}
	return uint(id), nil
}
