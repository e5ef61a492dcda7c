package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processToolReq binds the tool parameter object. A missing body is an
// empty parameter set, not an error.
func (h *handler) processToolReq(c *gin.Context) (map[string]interface{}, error) {
	params := make(map[string]interface{})
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return params, nil
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		return nil, err
	}
	return params, nil
}
