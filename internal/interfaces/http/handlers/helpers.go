package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"sahaaya.backend/pkg/utils"
)

const defaultPageSize = 20

// paginate reads page/limit query params and returns the SQL window plus
// the parsed params for building response metadata.
func paginate(c *gin.Context) (limit, offset int, params utils.PaginationParams) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}

	params = utils.GetPaginationParams(page, limit)
	return params.Limit, params.CalculateOffset(), params
}
