package controllers

import (
	"errors"
	"net/http"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/middlewares"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/pkg/resp"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/services"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/utils"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/signup
// Registration never logs the user in: the account has to be verified
// through the mailed link first.
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess := middlewares.CurrentSession(c)
	err := sess.Auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password, req.PhoneNumber)
	notices := sess.Notices.Drain()
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error(), "notices": notices})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error(), "notices": notices})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "notices": notices})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess := middlewares.CurrentSession(c)
	user, token, err := sess.Auth.Login(c.Request.Context(), req.Email, req.Password)
	notices := sess.Notices.Drain()
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, services.ErrNotVerified) {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"success": false, "message": err.Error(), "notices": notices})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
		"notices": notices,
	})
}

// POST /auth/logout
// The session clears immediately; the token revocation runs in the
// background and its failure never blocks this response.
func (a *AuthController) Logout(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	sess.Auth.Logout()
	c.JSON(http.StatusOK, gin.H{"success": true, "notices": sess.Notices.Drain()})
}

// GET /auth/session
func (a *AuthController) Session(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	resp.OK(c, gin.H{
		"user":    sess.Auth.User(),
		"checked": sess.Auth.Checked(),
	})
}

// GET /auth/verify?token=
func (a *AuthController) Verify(c *gin.Context) {
	user, err := a.Auth.Verify(c.Query("token"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"email": user.Email, "verified": user.Verified})
}

// GET /auth/me (requires login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req struct {
		Name        *string `json:"name"`
		PhoneNumber *string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	user, err := a.Auth.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}
