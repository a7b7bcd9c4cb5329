package handler

import (
	"net/http"

	"github.com/bakery/backend/internal/infrastructure/logger"
	"github.com/bakery/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey is the header carrying the request ID
const RequestIDKey = "X-Request-ID"

// BaseHandler provides common handler utilities
type BaseHandler struct {
	prettyJSON bool
}

// NewBaseHandler creates a BaseHandler. With prettyJSON set, bodies are indented.
func NewBaseHandler(prettyJSON bool) BaseHandler {
	return BaseHandler{prettyJSON: prettyJSON}
}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader(RequestIDKey)
}

// JSON writes body with the given status
func (h *BaseHandler) JSON(c *gin.Context, statusCode int, body any) {
	if h.prettyJSON {
		c.IndentedJSON(statusCode, body)
		return
	}
	c.JSON(statusCode, body)
}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	h.JSON(c, http.StatusOK, data)
}

// Message sends {"message": ...} with the given status
func (h *BaseHandler) Message(c *gin.Context, statusCode int, message string) {
	h.JSON(c, statusCode, dto.NewMessageResponse(message))
}

// NotFound sends a 404 response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Message(c, http.StatusNotFound, message)
}

// InternalError logs err and sends a 500 response
func (h *BaseHandler) InternalError(c *gin.Context, err error) {
	logger.GetGinLogger(c).Error("Request failed",
		zap.String("request_id", getRequestID(c)),
		zap.Error(err),
	)
	_ = c.Error(err)
	h.Message(c, http.StatusInternalServerError, dto.MsgInternal)
}

// HandleError converts err to a response. Not-found errors use notFoundMessage.
func (h *BaseHandler) HandleError(c *gin.Context, err error, notFoundMessage string) {
	if err == nil {
		return
	}

	if dto.GetHTTPStatus(err) == http.StatusNotFound {
		h.NotFound(c, notFoundMessage)
		return
	}
	h.InternalError(c, err)
}
