package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-diet-be/internal/entities"
	"daily-diet-be/internal/middleware"
	"daily-diet-be/internal/models"
	"daily-diet-be/internal/repository"
	"daily-diet-be/internal/service"
)

type MealController struct {
	mealService service.MealService
}

func NewMealController(mealService service.MealService) *MealController {
	return &MealController{
		mealService: mealService,
	}
}

// resolveUser maps the session token stored by the middleware to its user.
// A token that belongs to nobody is a bad request, not a missing resource.
func (mc *MealController) resolveUser(c *gin.Context) (*entities.User, bool) {
	user, err := mc.mealService.ResolveUser(middleware.SessionID(c))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "User not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
		}
		return nil, false
	}

	return user, true
}

// List handles GET /meals - returns the meals owned by the session's user
func (mc *MealController) List(c *gin.Context) {
	user, ok := mc.resolveUser(c)
	if !ok {
		return
	}

	meals, err := mc.mealService.List(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	if meals == nil {
		meals = []*entities.Meal{}
	}

	c.JSON(http.StatusOK, gin.H{
		"meals": meals,
	})
}

// Get handles GET /meals/:id - returns one meal, or null when the user owns
// no meal with that id
func (mc *MealController) Get(c *gin.Context) {
	user, ok := mc.resolveUser(c)
	if !ok {
		return
	}

	meal, err := mc.mealService.Get(user.ID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meal": meal,
	})
}

// Create handles POST /meals
func (mc *MealController) Create(c *gin.Context) {
	user, ok := mc.resolveUser(c)
	if !ok {
		return
	}

	var req models.CreateMealRequest
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

	if _, err := mc.mealService.Create(user.ID, &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meal created successfully",
	})
}

// Update handles PUT /meals/:id - partial update; omitted fields keep their
// stored values. Responds 201 whether or not a row matched.
func (mc *MealController) Update(c *gin.Context) {
	user, ok := mc.resolveUser(c)
	if !ok {
		return
	}

	var req models.UpdateMealRequest
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

	if err := mc.mealService.Update(user.ID, c.Param("id"), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meal updated successfully",
	})
}

// Delete handles DELETE /meals/:id. Responds 201 whether or not a row
// matched.
func (mc *MealController) Delete(c *gin.Context) {
	user, ok := mc.resolveUser(c)
	if !ok {
		return
	}

	if err := mc.mealService.Delete(user.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meal deleted successfully",
	})
}
