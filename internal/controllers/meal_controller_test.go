package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dietlog-be/internal/entities"
	"dietlog-be/internal/metrics"
	"dietlog-be/internal/models"
	"dietlog-be/internal/repository"
)

// fakeMealService is an in-memory MealService preserving creation order.
type fakeMealService struct {
	meals  []*entities.Meal
	nextID int
}

func (f *fakeMealService) Create(userID string, req *models.MealRequest) error {
	f.nextID++
	f.meals = append(f.meals, &entities.Meal{
		ID:          testMealIDs[f.nextID-1],
		UserID:      userID,
		Name:        req.Name,
		Description: *req.Description,
		IsOnDiet:    *req.IsOnDiet,
		Date:        req.Date.UnixMilli(),
	})
	return nil
}

func (f *fakeMealService) Get(userID, id string) (*entities.Meal, error) {
	for _, m := range f.meals {
		if m.ID == id && m.UserID == userID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMealService) List(userID string) ([]*entities.Meal, error) {
	var out []*entities.Meal
	for _, m := range f.meals {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMealService) Update(userID, id string, req *models.MealRequest) error {
	for _, m := range f.meals {
		if m.ID == id && m.UserID == userID {
			m.Name = req.Name
			m.Description = *req.Description
			m.IsOnDiet = *req.IsOnDiet
			m.Date = req.Date.UnixMilli()
			return nil
		}
	}
	return repository.ErrMealNotFound
}

func (f *fakeMealService) Delete(userID, id string) error {
	for i, m := range f.meals {
		if m.ID == id && m.UserID == userID {
			f.meals = append(f.meals[:i], f.meals[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeMealService) Metrics(userID string) (*metrics.Summary, error) {
	meals, _ := f.List(userID)
	summary := metrics.Summarize(meals)
	return &summary, nil
}

var testMealIDs = []string{
	"b3f1c5e0-0000-4000-8000-000000000001",
	"b3f1c5e0-0000-4000-8000-000000000002",
	"b3f1c5e0-0000-4000-8000-000000000003",
	"b3f1c5e0-0000-4000-8000-000000000004",
	"b3f1c5e0-0000-4000-8000-000000000005",
}

func mealTestRouter(svc *fakeMealService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mc := NewMealController(svc)

	meals := router.Group("/meals")
	meals.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
	})
	{
		meals.POST("/", mc.Create)
		meals.GET("/", mc.List)
		meals.GET("/metrics", mc.Metrics)
		meals.GET("/:id", mc.Get)
		meals.PUT("/:id", mc.Update)
		meals.DELETE("/:id", mc.Delete)
	}
	return router
}

func createMeal(t *testing.T, router *gin.Engine, name string, onDiet bool) {
	t.Helper()
	body := `{"name":"` + name + `","description":"It's a ` + strings.ToLower(name) +
		`","isOnDiet":` + map[bool]string{true: "true", false: "false"}[onDiet] +
		`,"date":"2021-01-01T08:00:00Z"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/meals/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Empty(t, w.Body.String())
}

func TestCreateMeal(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	createMeal(t, router, "Breakfast", true)

	require.Len(t, svc.meals, 1)
	assert.Equal(t, "user-1", svc.meals[0].UserID)
	assert.Equal(t, time.Date(2021, 1, 1, 8, 0, 0, 0, time.UTC).UnixMilli(), svc.meals[0].Date)
}

func TestCreateMealMissingFields(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	bodies := []string{
		`{"name":"Breakfast"}`,
		`{"name":"Breakfast","isOnDiet":true,"date":"2021-01-01T08:00:00Z"}`, // no description
	}
	for _, body := range bodies {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/meals/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	assert.Empty(t, svc.meals)
}

func TestListMealsAfterCreate(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	createMeal(t, router, "Breakfast", true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/meals/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.MealsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Meals, 1)
	assert.Equal(t, "Breakfast", resp.Meals[0].Name)
	assert.Equal(t, "It's a breakfast", resp.Meals[0].Description)
}

func TestGetMealByID(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	createMeal(t, router, "Breakfast", true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/meals/"+testMealIDs[0], nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.MealResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meal)
	assert.Equal(t, "Breakfast", resp.Meal.Name)
}

func TestGetMealMissingIsNull(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/meals/"+testMealIDs[4], nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"meal":null}`, w.Body.String())
}

func TestGetMealMalformedID(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/meals/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMeal(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	createMeal(t, router, "Breakfast", true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/meals/"+testMealIDs[0], strings.NewReader(
		`{"name":"Dinner","description":"It's a dinner","isOnDiet":false,"date":"2021-01-02T20:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "Dinner", svc.meals[0].Name)
	assert.False(t, svc.meals[0].IsOnDiet)
}

func TestUpdateMealNotFound(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/meals/"+testMealIDs[4], strings.NewReader(
		`{"name":"Dinner","description":"It's a dinner","isOnDiet":true,"date":"2021-01-02T20:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Meal not found")
	assert.Empty(t, svc.meals)
}

func TestUpdateMealMissingFields(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	createMeal(t, router, "Breakfast", true)

	// Partial update is not supported: every field is required
	bodies := []string{
		`{"name":"Dinner"}`,
		`{"name":"Dinner","isOnDiet":true,"date":"2021-01-02T20:00:00Z"}`, // no description
		`{"description":"It's a dinner","isOnDiet":true,"date":"2021-01-02T20:00:00Z"}`,
	}
	for _, body := range bodies {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/meals/"+testMealIDs[0], strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	assert.Equal(t, "Breakfast", svc.meals[0].Name)
	assert.Equal(t, "It's a breakfast", svc.meals[0].Description)
}

func TestUpdateMealEmptyDescriptionIsValid(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	createMeal(t, router, "Breakfast", true)

	// Present-but-empty description is a full replacement, not a 400
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/meals/"+testMealIDs[0], strings.NewReader(
		`{"name":"Dinner","description":"","isOnDiet":true,"date":"2021-01-02T20:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "", svc.meals[0].Description)
}

func TestDeleteMeal(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	createMeal(t, router, "Breakfast", true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/meals/"+testMealIDs[0], nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, svc.meals)
}

func TestDeleteMealAbsentIDStill204(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/meals/"+testMealIDs[4], nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteMealMalformedID(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/meals/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	svc := &fakeMealService{}
	router := mealTestRouter(svc)

	// Breakfast on, Lunch off, Snack on, Dinner on, Breakfast on
	createMeal(t, router, "Breakfast", true)
	createMeal(t, router, "Lunch", false)
	createMeal(t, router, "Snack", true)
	createMeal(t, router, "Dinner", true)
	createMeal(t, router, "Breakfast", true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/meals/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"totalMeals": 5,
		"totalMealsOnDiet": 4,
		"totalMealsOffDiet": 1,
		"bestOnDietSequence": 3
	}`, w.Body.String())
}
