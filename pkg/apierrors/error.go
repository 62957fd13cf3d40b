package apierrors

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"taskflow/internal/core/domain"
	"taskflow/pkg/translator"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ErrDetails Err    `json:"error"`
}

// Err represents the error with a code and message.
type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	message := GetTransErrorMsg(msgKey, lang)
	return JsonErr{
		Success:    false,
		Message:    message,
		ErrDetails: Err{Code: code, Message: message},
	}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	msg, err := translator.Localize(msgKey, lang)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}

var domainErrors = []struct {
	err    error
	status int
	msgKey string
}{
	{domain.ErrMissingFields, http.StatusBadRequest, MsgMissingFields},
	{domain.ErrInvalidEmail, http.StatusBadRequest, MsgInvalidEmail},
	{domain.ErrPasswordTooShort, http.StatusBadRequest, MsgPasswordTooShort},
	{domain.ErrInvalidProfile, http.StatusBadRequest, MsgInvalidProfile},
	{domain.ErrInvalidTaskPayload, http.StatusBadRequest, MsgInvalidTaskPayload},
	{domain.ErrEmailTaken, http.StatusConflict, MsgEmailInUse},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, MsgInvalidCredentials},
	{domain.ErrWrongPassword, http.StatusUnauthorized, MsgWrongCurrentPassword},
	{domain.ErrInvalidToken, http.StatusUnauthorized, MsgNotAuthorized},
	{domain.ErrUserNotFound, http.StatusNotFound, MsgUserNotFound},
	{domain.ErrTaskNotFound, http.StatusNotFound, MsgTaskNotFound},
}

// FromDomain maps a domain error to an HTTP status and message key. The
// boolean is false for unexpected errors, which map to a generic 500.
func FromDomain(err error) (int, string, bool) {
	for _, candidate := range domainErrors {
		if errors.Is(err, candidate.err) {
			return candidate.status, candidate.msgKey, true
		}
	}
	return http.StatusInternalServerError, MsgServerError, false
}
