package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	user "blog-backend/internal/domains/user"
	"blog-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Register - POST /api/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "REGISTER_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Registered successfully", resp)
}

// Login - POST /api/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "LOGIN_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Logged in successfully", resp)
}
