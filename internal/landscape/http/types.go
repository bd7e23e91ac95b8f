package http

import (
	"context"

	"github.com/gin-gonic/gin"
)

// PathQuery carries the two endpoints of a path search.
type PathQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

// requestContext propagates the middleware request id into the service
// context so service log lines carry it.
func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if rid := c.GetString("request_id"); rid != "" {
		ctx = context.WithValue(ctx, "request_id", rid)
	}
	return ctx
}
