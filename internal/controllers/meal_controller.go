package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dietlog-be/internal/models"
	"dietlog-be/internal/repository"
	"dietlog-be/internal/service"
)

type MealController struct {
	mealService service.MealService
}

func NewMealController(mealService service.MealService) *MealController {
	return &MealController{
		mealService: mealService,
	}
}

// mealID validates the :id path parameter as a well-formed UUID before
// any store access; writes a 400 and returns false otherwise.
func mealID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid meal id, must be a valid UUID",
		})
		return "", false
	}
	return id, true
}

// Create handles POST /meals/
func (mc *MealController) Create(c *gin.Context) {
	var req models.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetString("user_id")

	if err := mc.mealService.Create(userID, &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Status(http.StatusCreated)
}

// Get handles GET /meals/:id - the meal is null when no row matched
func (mc *MealController) Get(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	userID := c.GetString("user_id")

	meal, err := mc.mealService.Get(userID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.MealResponse{Meal: meal})
}

// List handles GET /meals/ - all meals of the current user in creation order
func (mc *MealController) List(c *gin.Context) {
	userID := c.GetString("user_id")

	meals, err := mc.mealService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.MealsResponse{Meals: meals})
}

// Update handles PUT /meals/:id - full replacement of the mutable fields
func (mc *MealController) Update(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	var req models.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetString("user_id")

	if err := mc.mealService.Update(userID, id, &req); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Meal not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /meals/:id - 204 whether or not the row existed
func (mc *MealController) Delete(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	userID := c.GetString("user_id")

	if err := mc.mealService.Delete(userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// Metrics handles GET /meals/metrics
func (mc *MealController) Metrics(c *gin.Context) {
	userID := c.GetString("user_id")

	summary, err := mc.mealService.Metrics(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}
