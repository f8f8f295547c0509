package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"daily-diet-be/internal/controllers"
	"daily-diet-be/internal/middleware"
	"daily-diet-be/internal/repository/mocks"
	"daily-diet-be/internal/service"
)

// setupRouter wires the full controller stack against mocked repositories,
// with the same middleware chain as main.go (minus rate limiting).
func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockUserRepository, *mocks.MockMealRepository) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	mealRepo := mocks.NewMockMealRepository(ctrl)

	userService := service.NewUserService(userRepo)
	mealService := service.NewMealService(mealRepo, userRepo)
	userController := controllers.NewUserController(userService)
	mealController := controllers.NewMealController(mealService)

	r := gin.New()
	r.GET("/users", middleware.RequireSession(), userController.List)
	r.POST("/users", userController.Create)

	meals := r.Group("/meals", middleware.RequireSession())
	meals.GET("", mealController.List)
	meals.GET("/:id", middleware.RequireUUIDParam("id"), mealController.Get)
	meals.POST("", mealController.Create)
	meals.PUT("/:id", middleware.RequireUUIDParam("id"), mealController.Update)
	meals.DELETE("/:id", middleware.RequireUUIDParam("id"), mealController.Delete)

	return r, userRepo, mealRepo
}

func doRequest(r *gin.Engine, method, path, body, sessionID string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionID})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	return nil
}
