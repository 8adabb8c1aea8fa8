package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	category "blog-backend/internal/domains/category"
	"blog-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// ========== CREATE: POST /api/categories (admin) ==========
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Category created successfully", resp)
}

// ========== READ: GET /api/categories ==========
func (h *CategoryHandler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_LIST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", resp)
}

// ========== READ: GET /api/categories/:identifier ==========
// The path position takes either an id or a slug.
func (h *CategoryHandler) GetByIdentifier(c *gin.Context) {
	resp, err := h.service.GetByIdentifier(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_GET_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", resp)
}

// ========== UPDATE: PUT /api/categories/:identifier (admin) ==========
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "identifier")
	if !ok {
		return
	}

	var req category.UpdateCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Category updated successfully", resp)
}

// ========== DELETE: DELETE /api/categories/:identifier (admin) ==========
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "identifier")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Category deleted successfully", nil)
}

// ========== SUBCATEGORIES ==========

// POST /api/categories/:identifier/subcategories (admin)
func (h *CategoryHandler) CreateSubCategory(c *gin.Context) {
	categoryID, ok := h.pathID(c, "identifier")
	if !ok {
		return
	}

	var req category.SubCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateSubCategory(c.Request.Context(), categoryID, &req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "SUBCATEGORY_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Subcategory created successfully", resp)
}

// GET /api/categories/:identifier/subcategories
func (h *CategoryHandler) GetSubCategories(c *gin.Context) {
	categoryID, ok := h.pathID(c, "identifier")
	if !ok {
		return
	}

	resp, err := h.service.GetSubCategories(c.Request.Context(), categoryID)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "SUBCATEGORY_LIST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", resp)
}

// PUT /api/categories/:identifier/subcategories/:subCategoryId (admin)
func (h *CategoryHandler) UpdateSubCategory(c *gin.Context) {
	categoryID, ok := h.pathID(c, "identifier")
	if !ok {
		return
	}
	subCategoryID, ok := h.pathID(c, "subCategoryId")
	if !ok {
		return
	}

	var req category.SubCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateSubCategory(c.Request.Context(), categoryID, subCategoryID, &req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "SUBCATEGORY_UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Subcategory updated successfully", resp)
}

// DELETE /api/categories/:identifier/subcategories/:subCategoryId (admin)
func (h *CategoryHandler) DeleteSubCategory(c *gin.Context) {
	categoryID, ok := h.pathID(c, "identifier")
	if !ok {
		return
	}
	subCategoryID, ok := h.pathID(c, "subCategoryId")
	if !ok {
		return
	}

	if err := h.service.DeleteSubCategory(c.Request.Context(), categoryID, subCategoryID); err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "SUBCATEGORY_DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Subcategory deleted successfully", nil)
}

// pathID parses a path parameter as an id. A malformed id is reported as
// not-found, the same as an id that matches nothing.
func (h *CategoryHandler) pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.NotFound(c, category.ErrCategoryNotFound.Error())
		return uuid.Nil, false
	}
	return id, true
}
