package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"daily-diet-be/internal/entities"
	"daily-diet-be/internal/middleware"
	"daily-diet-be/internal/models"
	"daily-diet-be/internal/service"
)

// Session cookies live for 7 days on path /.
const sessionCookieMaxAge = 7 * 24 * 60 * 60

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// List handles GET /users - returns every user in storage
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.userService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	if users == nil {
		users = []*entities.User{}
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
	})
}

// Create handles POST /users - creates a user and issues a session cookie
// when the request carries none
func (uc *UserController) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if errs := req.Validate(); errs.Any() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Required fields are missing or invalid",
			"details": errs,
		})
		return
	}

	// Reuse the incoming session token, or issue a fresh one. The cookie is
	// attached to the response before the insert is attempted, so a failed
	// insert still leaves the client with a usable token for a retry.
	sessionID, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.NewString()
		c.SetCookie(middleware.SessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, false)
	}

	if _, err := uc.userService.Create(&req, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
	})
}
