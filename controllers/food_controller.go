package controllers

import (
	"fmt"

	"github.com/Atsuyko/restaurant/pkg/resp"
	"github.com/Atsuyko/restaurant/services"
	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Service *services.FoodService
}

func NewFoodController(s *services.FoodService) *FoodController {
	return &FoodController{Service: s}
}

type FoodCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

// POST /api/food
func (ctl *FoodController) Create(c *gin.Context) {
	var req FoodCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	food, err := ctl.Service.Create(req.Title, req.Description, req.Price)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	location := resp.AbsoluteURL(c, fmt.Sprintf("/api/food/%d", food.ID))
	resp.Created(c, food, location)
}

// GET /api/food/:id
func (ctl *FoodController) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c)
		return
	}

	food, err := ctl.Service.Get(id)
	if err != nil {
		resp.NotFound(c)
		return
	}
	resp.OK(c, food)
}

// PUT /api/food/:id
func (ctl *FoodController) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c)
		return
	}

	food, err := ctl.Service.Get(id)
	if err != nil {
		resp.NotFound(c)
		return
	}

	var upd services.FoodUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.Edit(food, upd); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// DELETE /api/food/:id
func (ctl *FoodController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c)
		return
	}

	food, err := ctl.Service.Get(id)
	if err != nil {
		resp.NotFound(c)
		return
	}

	if err := ctl.Service.Delete(food); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
