package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	responseMetaKey  = "response_meta"
	requestStartKey  = "response_meta_start"
	noticeKey        = "notice"
	processingTimeMs = "processing_time_ms"
)

// Notice kinds.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
	NoticeInfo    = "info"
)

// Notice is a transient banner the client shows and hides after DismissAfterMs.
type Notice struct {
	Text           string `json:"text"`
	Type           string `json:"type"`
	DismissAfterMs int64  `json:"dismiss_after_ms"`
}

// WithResponseMeta initialises response metadata storage on the request context.
// processing_time_ms is stamped when a handler extracts the meta to write it.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestStartKey, time.Now())
		c.Set(responseMetaKey, map[string]interface{}{})
		c.Next()
	}
}

// SetNotice attaches a banner to the current response.
func SetNotice(c *gin.Context, text, kind string, dismissAfter time.Duration) {
	meta := ensureMeta(c)
	meta[noticeKey] = Notice{Text: text, Type: kind, DismissAfterMs: dismissAfter.Milliseconds()}
}

// ExtractMeta returns the metadata map stored on the context, with the elapsed time so far.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	meta, exists := c.Get(responseMetaKey)
	if !exists {
		return nil
	}
	typed, ok := meta.(map[string]interface{})
	if !ok {
		return nil
	}
	if start, ok := c.Get(requestStartKey); ok {
		if t, ok := start.(time.Time); ok {
			typed[processingTimeMs] = time.Since(t).Milliseconds()
		}
	}
	return typed
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return map[string]interface{}{}
	}
	if meta, exists := c.Get(responseMetaKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok {
			return typed
		}
	}
	newMeta := make(map[string]interface{})
	c.Set(responseMetaKey, newMeta)
	return newMeta
}
