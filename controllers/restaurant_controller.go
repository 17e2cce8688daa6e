package controllers

import (
	"fmt"

	"github.com/Atsuyko/restaurant/pkg/resp"
	"github.com/Atsuyko/restaurant/services"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

type RestaurantCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxGuest    int    `json:"maxGuest"`
}

// POST /api/restaurant
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req RestaurantCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	restaurant, err := ctl.Service.Create(req.Name, req.Description, req.MaxGuest)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	location := resp.AbsoluteURL(c, fmt.Sprintf("/api/restaurant/%d", restaurant.ID))
	resp.Created(c, restaurant, location)
}

// GET /api/restaurant/:id
func (ctl *RestaurantController) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c)
		return
	}

	restaurant, err := ctl.Service.Get(id)
	if err != nil {
		resp.NotFound(c)
		return
	}
	resp.OK(c, restaurant)
}

// PUT /api/restaurant/:id
func (ctl *RestaurantController) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c)
		return
	}

	restaurant, err := ctl.Service.Get(id)
	if err != nil {
		resp.NotFound(c)
		return
	}

	var upd services.RestaurantUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.Edit(restaurant, upd); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// DELETE /api/restaurant/:id
func (ctl *RestaurantController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c)
		return
	}

	restaurant, err := ctl.Service.Get(id)
	if err != nil {
		resp.NotFound(c)
		return
	}

	if err := ctl.Service.Delete(restaurant); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
