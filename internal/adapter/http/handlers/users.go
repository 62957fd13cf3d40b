package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/mapper"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if _, err := readJSON(c, &req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, apierrors.MsgInvalidJSON)
		return
	}

	result, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			abortWithMessage(c, http.StatusConflict, apierrors.MsgUserExists)
			return
		}
		respondError(c, err, "failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Token:   result.Token,
		User:    mapper.ToUserItem(result.User),
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if _, err := readJSON(c, &req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, apierrors.MsgInvalidJSON)
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "failed to log in user")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   result.Token,
		User:    mapper.ToUserItem(result.User),
	})
}

func (h *UserHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to load current user", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{Success: true, User: mapper.ToUserItem(user)})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req dto.UpdateProfileRequest
	if _, err := readJSON(c, &req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, apierrors.MsgInvalidJSON)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, domain.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, err, "failed to update profile", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{Success: true, User: mapper.ToUserItem(user)})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req dto.ChangePasswordRequest
	if _, err := readJSON(c, &req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, apierrors.MsgInvalidJSON)
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), userID, domain.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) || errors.Is(err, domain.ErrPasswordTooShort) {
			abortWithMessage(c, http.StatusBadRequest, apierrors.MsgInvalidPasswordPayload)
			return
		}
		respondError(c, err, "failed to change password", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: translate(c, apierrors.MsgPasswordChanged),
	})
}
