package handlers

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"taskflow/internal/adapter/http/middleware"
	"taskflow/pkg/apierrors"
)

const maxBodyBytes = 1 << 20

var (
	errMalformedJSON = errors.New("malformed json body")
	errInvalidFields = errors.New("invalid field values")
)

// readJSON decodes the body into req and also returns the raw object so
// callers can tell "absent" from "null". errMalformedJSON means the body is
// not a JSON object; errInvalidFields means it is, but binding failed.
func readJSON(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, errMalformedJSON
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, errMalformedJSON
	}

	if err := binding.JSON.BindBody(body, req); err != nil {
		return raw, errInvalidFields
	}
	return raw, nil
}

func abortWithMessage(c *gin.Context, status int, msgKey string) {
	c.JSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}

// respondError writes the mapped domain error. Unexpected errors are logged
// and reported with a generic message only.
func respondError(c *gin.Context, err error, logMsg string, fields ...zap.Field) {
	status, msgKey, known := apierrors.FromDomain(err)
	if !known {
		zap.L().Error(logMsg, append(fields, zap.Error(err))...)
		_ = c.Error(err)
	}
	abortWithMessage(c, status, msgKey)
}

func translate(c *gin.Context, msgKey string) string {
	return apierrors.GetTransErrorMsg(msgKey, middleware.GetLang(c))
}
