package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	post "blog-backend/internal/domains/post"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{service: svc}
}

// ========== CREATE: POST /api/blogs (author or admin) ==========
func (h *PostHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized - No token provided")
		return
	}

	var req post.CreatePostRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		response.ErrorResponse(c, post.GetHTTPStatusCode(err), "POST_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Post created successfully", resp)
}

// ========== READ: GET /api/blogs (public; status filter is role-gated) ==========
func (h *PostHandler) List(c *gin.Context) {
	f := &post.Filter{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
		Tag:    c.Query("tag"),
		Search: c.Query("search"),
	}

	if v := c.Query("category"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "invalid category id")
			return
		}
		f.CategoryID = &id
	}
	if v := c.Query("subCategory"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "invalid subCategory id")
			return
		}
		f.SubCategoryID = &id
	}
	if v := c.Query("author"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "invalid author id")
			return
		}
		f.AuthorID = &id
	}
	if v := c.Query("status"); v != "" {
		status, ok := post.ParseStatus(v)
		if !ok {
			response.BadRequest(c, "status must be one of draft, published, archived")
			return
		}
		f.Status = &status
	}

	// Anonymous requests are fine here; the service restricts visibility.
	identity, _ := middleware.GetIdentity(c)

	resp, err := h.service.List(c.Request.Context(), identity, f)
	if err != nil {
		response.ErrorResponse(c, post.GetHTTPStatusCode(err), "POST_LIST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", resp)
}

// ========== READ: GET /api/blogs/:id (public, bumps view count) ==========
func (h *PostHandler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, post.GetHTTPStatusCode(err), "POST_GET_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", resp)
}

// ========== READ: GET /api/blogs/:id/related (public) ==========
func (h *PostHandler) Related(c *gin.Context) {
	resp, err := h.service.Related(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, post.GetHTTPStatusCode(err), "POST_RELATED_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", resp)
}

// ========== UPDATE: PUT /api/blogs/:id (author or admin + ownership) ==========
func (h *PostHandler) Update(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized - No token provided")
		return
	}

	var req post.UpdatePostRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		response.ErrorResponse(c, post.GetHTTPStatusCode(err), "POST_UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Post updated successfully", resp)
}

// ========== DELETE: DELETE /api/blogs/:id (author or admin + ownership) ==========
func (h *PostHandler) Delete(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized - No token provided")
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		response.ErrorResponse(c, post.GetHTTPStatusCode(err), "POST_DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Post deleted successfully", nil)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
