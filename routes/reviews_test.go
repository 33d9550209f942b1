package routes

import (
	"net/http"
	"testing"

	"cleanmorocco-server/models"

	"github.com/kataras/iris/v12"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewApp(t *testing.T, db *gorm.DB) *iris.Application {
	handler := NewReviewHandler(db)
	return newTestApp(t, func(app *iris.Application) {
		app.Post("/api/cleaners/{slug}/reviews", handler.CreateReview)
	})
}

func TestCreateReviewRecomputesAggregate(t *testing.T) {
	db := newTestDB(t)
	city := mustCity(t, db, "Marrakech", "marrakech")
	cleaner := mustCleaner(t, db, cleanerSpec{
		name: "Atlas Shine", slug: "atlas-shine", cityID: city.ID, active: true,
	})
	app := newReviewApp(t, db)

	rec := doJSON(t, app, http.MethodPost, "/api/cleaners/atlas-shine/reviews", map[string]interface{}{
		"name":    "Fatima",
		"email":   "fatima@example.com",
		"rating":  5,
		"comment": "Fantastisch werk",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var updated models.Cleaner
	require.NoError(t, db.First(&updated, cleaner.ID).Error)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 5.0, *updated.Rating)
	assert.Equal(t, 1, updated.ReviewCount)

	rec = doJSON(t, app, http.MethodPost, "/api/cleaners/atlas-shine/reviews", map[string]interface{}{
		"name":   "Youssef",
		"email":  "youssef@example.com",
		"rating": 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NoError(t, db.First(&updated, cleaner.ID).Error)
	require.NotNil(t, updated.Rating)
	assert.InDelta(t, 4.5, *updated.Rating, 0.001)
	assert.Equal(t, 2, updated.ReviewCount)

	var reviews int64
	require.NoError(t, db.Model(&models.Review{}).Where("cleaner_id = ?", cleaner.ID).Count(&reviews).Error)
	assert.Equal(t, int64(2), reviews)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	db := newTestDB(t)
	city := mustCity(t, db, "Marrakech", "marrakech")
	mustCleaner(t, db, cleanerSpec{
		name: "Atlas Shine", slug: "atlas-shine", cityID: city.ID, active: true,
	})
	app := newReviewApp(t, db)

	for _, rating := range []int{0, 6} {
		rec := doJSON(t, app, http.MethodPost, "/api/cleaners/atlas-shine/reviews", map[string]interface{}{
			"name":   "Fatima",
			"email":  "fatima@example.com",
			"rating": rating,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "rating %d", rating)
	}

	var reviews int64
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	assert.Zero(t, reviews)
}

func TestCreateReviewUnknownCleaner(t *testing.T) {
	db := newTestDB(t)
	app := newReviewApp(t, db)

	rec := doJSON(t, app, http.MethodPost, "/api/cleaners/ghost/reviews", map[string]interface{}{
		"name":   "Fatima",
		"email":  "fatima@example.com",
		"rating": 5,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateReviewReusesExistingUser(t *testing.T) {
	db := newTestDB(t)
	city := mustCity(t, db, "Marrakech", "marrakech")
	mustCleaner(t, db, cleanerSpec{
		name: "Atlas Shine", slug: "atlas-shine", cityID: city.ID, active: true,
	})
	existing := models.User{Email: "fatima@example.com", Name: "Fatima", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&existing).Error)
	app := newReviewApp(t, db)

	rec := doJSON(t, app, http.MethodPost, "/api/cleaners/atlas-shine/reviews", map[string]interface{}{
		"name":   "Someone Else",
		"email":  "fatima@example.com",
		"rating": 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)

	var review models.Review
	require.NoError(t, db.First(&review).Error)
	assert.Equal(t, existing.ID, review.UserID)
}
