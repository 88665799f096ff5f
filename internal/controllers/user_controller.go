package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dietlog-be/internal/middleware"
	"dietlog-be/internal/models"
	"dietlog-be/internal/repository"
	"dietlog-be/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Signup handles POST /users/signup
func (uc *UserController) Signup(c *gin.Context) {
	// Issue the session cookie before the signup completes, so even a
	// first contact leaves the client with a token to correlate on.
	sessionID, err := c.Cookie(middleware.SessionCookie)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie(middleware.SessionCookie, sessionID, middleware.SessionMaxAge, "/", "", false, true)
	}

	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if _, err := uc.userService.Signup(&req, sessionID); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "User already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Status(http.StatusCreated)
}

// ListUsers handles GET /users/ - diagnostic endpoint, returns every row
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, users)
}
