package handler

import (
	"encoding/json"
	"strconv"

	"multipay-aggregator/internal/adapter/http/middleware"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/response"

	"github.com/gin-gonic/gin"
)

// idempotencyKey reads the client-supplied key. Syntax is validated by the
// execution coordinator, which owns the rejection semantics.
func idempotencyKey(c *gin.Context) string {
	return c.GetHeader(middleware.HeaderIdempotencyKey)
}

// writeExecution renders a coordinator result. Replays carry a marker header
// so clients can tell a duplicate acknowledgement from a fresh execution.
func writeExecution(c *gin.Context, result *ports.ExecutionResult) {
	if result.Replayed {
		c.Header("Idempotency-Replayed", "true")
	}
	response.Created(c, json.RawMessage(result.Response))
}

// queryInt parses an integer query parameter with a default.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// pageParams extracts page/page_size with the service-side defaults.
func pageParams(c *gin.Context) (int, int) {
	return queryInt(c, "page", 1), queryInt(c, "page_size", 20)
}
