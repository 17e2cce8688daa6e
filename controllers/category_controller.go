package controllers

import (
	"fmt"

	"github.com/Atsuyko/restaurant/pkg/resp"
	"github.com/Atsuyko/restaurant/services"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Service: s}
}

type CategoryCreateRequest struct {
	Title string `json:"title"`
}

// POST /api/category
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category, err := ctl.Service.Create(req.Title)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	location := resp.AbsoluteURL(c, fmt.Sprintf("/api/category/%d", category.ID))
	resp.Created(c, category, location)
}

// GET /api/category/:id
func (ctl *CategoryController) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c)
		return
	}

	category, err := ctl.Service.Get(id)
	if err != nil {
		resp.NotFound(c)
		return
	}
	resp.OK(c, category)
}

// PUT /api/category/:id
func (ctl *CategoryController) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c)
		return
	}

	category, err := ctl.Service.Get(id)
	if err != nil {
		resp.NotFound(c)
		return
	}

	var upd services.CategoryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.Edit(category, upd); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// DELETE /api/category/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c)
		return
	}

	category, err := ctl.Service.Get(id)
	if err != nil {
		resp.NotFound(c)
		return
	}

	if err := ctl.Service.Delete(category); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
