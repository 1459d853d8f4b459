// File: /controllers/testdrive_controller_test.go
package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"autohub-api/config"
	"autohub-api/controllers"
	"autohub-api/models"
	"autohub-api/repositories"
	"autohub-api/services"
)

type testDriveFixture struct {
	router  *gin.Engine
	userID  string
	vehicle string
}

func newTestDriveFixture(t *testing.T) testDriveFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Branch{}, &models.Vehicle{}, &models.TestDrive{}))

	user := models.User{
		ID: uuid.New().String(), FullName: "Test User",
		Email: "driver@example.com", PasswordHash: "$2a$10$dummy", Role: models.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	vehicle := models.Vehicle{
		ID: uuid.New().String(), Brand: "Audi", Model: "A4",
		Year: 2020, Mileage: 45000, Price: 23500, FuelType: "Diesel",
	}
	require.NoError(t, db.Create(&vehicle).Error)

	emailService := services.NewEmailService(&config.Config{EmailEnabled: false})
	controller := controllers.NewTestDriveController(
		repositories.NewTestDriveRepository(db),
		repositories.NewVehicleRepository(db),
		repositories.NewUserRepository(db),
		emailService,
	)
	router := gin.New()
	router.POST("/testdrives", controller.CreateTestDrive)

	return testDriveFixture{router: router, userID: user.ID, vehicle: vehicle.ID}
}

func (f testDriveFixture) book(body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/testdrives", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(recorder, request)
	return recorder
}

func TestCreateTestDriveAcceptsCamelCaseBody(t *testing.T) {
	f := newTestDriveFixture(t)

	body := fmt.Sprintf(
		`{"vehicleId": %q, "userId": %q, "preferredDate": "2026-09-15", "preferredTime": "10:30"}`,
		f.vehicle, f.userID,
	)
	response := f.book(body)
	require.Equal(t, http.StatusCreated, response.Code)

	var created models.TestDrive
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &created))
	assert.Equal(t, models.TestDrivePending, created.Status)
	assert.Equal(t, "10:30", created.Time)
}

func TestCreateTestDriveRejectsMalformedTime(t *testing.T) {
	f := newTestDriveFixture(t)

	for _, bad := range []string{"25:99", "9:30", "10:30:00", "noon"} {
		body := fmt.Sprintf(
			`{"vehicleId": %q, "userId": %q, "preferredDate": "2026-09-15", "preferredTime": %q}`,
			f.vehicle, f.userID, bad,
		)
		response := f.book(body)
		assert.Equal(t, http.StatusBadRequest, response.Code, "time %q must be rejected", bad)
	}
}

func TestCreateTestDriveRejectsMalformedDate(t *testing.T) {
	f := newTestDriveFixture(t)

	body := fmt.Sprintf(
		`{"vehicleId": %q, "userId": %q, "preferredDate": "15/09/2026", "preferredTime": "10:30"}`,
		f.vehicle, f.userID,
	)
	response := f.book(body)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}
