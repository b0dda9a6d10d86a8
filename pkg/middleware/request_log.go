package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/phonebook/phonebook/backend/pkg/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestLogger logs every request once it has completed:
//
//	<method> <url> <status> <bytes> - <elapsed> ms <json body>
//
// The request body is read up front and handed back to the handlers untouched.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		body := captureBody(c)
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Next()

		size := "-"
		if n := c.Writer.Size(); n >= 0 {
			size = strconv.Itoa(n)
		}
		elapsed := float64(time.Since(start).Microseconds()) / 1000
		logger.Infow(
			fmt.Sprintf("%s %s %d %s - %.3f ms %s", c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(), size, elapsed, body),
			"request_id", requestID,
			"client_ip", c.ClientIP(),
		)
	}
}

// captureBody returns the request body as compact JSON, or {} when the
// request carries no parseable JSON body.
func captureBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return "{}"
	}
	raw, err := io.ReadAll(c.Request.Body)
	_ = c.Request.Body.Close()
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || c.ContentType() != binding.MIMEJSON {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "{}"
	}
	return buf.String()
}
