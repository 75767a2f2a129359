package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studypath/reminder-service/internal/service/user"
)

type UserHandler struct {
	userService *user.Service
}

func NewUserHandler(userService *user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (h *UserHandler) HandleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	registered, err := h.userService.Register(c.Request.Context(), req.Email, req.Username)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserJSON(registered))
}

func (h *UserHandler) HandleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	found, err := h.userService.Login(c.Request.Context(), req.Email, req.Username)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserJSON(found))
}
