package controllers

import (
	"errors"
	"net/http"

	"github.com/Atsuyko/restaurant/pkg/resp"
	"github.com/Atsuyko/restaurant/services"
	"github.com/Atsuyko/restaurant/utils"
	"github.com/gin-gonic/gin"
)

type SecurityController struct {
	Service *services.AuthService
}

func NewSecurityController(s *services.AuthService) *SecurityController {
	return &SecurityController{Service: s}
}

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Allergy   string `json:"allergy"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/registration
func (ctl *SecurityController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Service.Register(req.Email, req.FirstName, req.LastName, req.Allergy, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":     user.Email,
		"apiToken": user.ApiToken,
		"roles":    user.RoleList(),
	})
}

// POST /api/login
func (ctl *SecurityController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// a malformed login body is just missing credentials
		resp.Unauthorized(c, "Missing credentials")
		return
	}

	user, err := ctl.Service.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, "Missing credentials")
		return
	}

	resp.OK(c, gin.H{
		"user":     user.Email,
		"apiToken": user.ApiToken,
		"roles":    user.RoleList(),
	})
}

// GET /api/account/me
//
// Answers 404 rather than 401 when no principal resolved; the original
// product behaves this way and callers depend on it.
func (ctl *SecurityController) Me(c *gin.Context) {
	user := utils.CurrentUser(c)
	if user == nil {
		resp.NotFound(c)
		return
	}
	resp.OK(c, user)
}

// PUT /api/account/edit
func (ctl *SecurityController) EditAccount(c *gin.Context) {
	user := utils.CurrentUser(c)
	if user == nil {
		resp.NotFound(c)
		return
	}

	var upd services.AccountUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.UpdateAccount(user, upd); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
