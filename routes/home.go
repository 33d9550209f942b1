package routes

import (
	"log"

	"cleanmorocco-server/models"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// HomeHandler produces the homepage payload. Every aggregate degrades to a
// zero value on failure so the homepage always renders.
type HomeHandler struct {
	DB *gorm.DB
}

func NewHomeHandler(db *gorm.DB) *HomeHandler {
	return &HomeHandler{DB: db}
}

// Home - GET /
func (h *HomeHandler) Home(ctx iris.Context) {
	var featured []models.Cleaner
	if err := h.DB.
		Preload("City").
		Where("is_active = ?", true).
		Order("is_verified DESC").
		Order("rating DESC NULLS LAST").
		Order("review_count DESC").
		Limit(6).
		Find(&featured).Error; err != nil {
		log.Printf("featured cleaners query failed: %v", err)
		featured = nil
	}

	featuredResponses := make([]CleanerResponse, 0, len(featured))
	for _, c := range featured {
		featuredResponses = append(featuredResponses, toCleanerResponse(c))
	}

	cities, err := queryCitiesWithCounts(h.DB, false)
	if err != nil {
		log.Printf("homepage cities query failed: %v", err)
		cities = []CityWithCount{}
	}

	var activeCleaners int64
	if err := h.DB.Model(&models.Cleaner{}).Where("is_active = ?", true).Count(&activeCleaners).Error; err != nil {
		log.Printf("active cleaner count failed: %v", err)
	}

	var cityCount int64
	if err := h.DB.Model(&models.City{}).Count(&cityCount).Error; err != nil {
		log.Printf("city count failed: %v", err)
	}

	var avgRating struct {
		Avg *float64
	}
	if err := h.DB.Model(&models.Cleaner{}).
		Where("is_active = ? AND rating IS NOT NULL", true).
		Select("AVG(rating) AS avg").
		Scan(&avgRating).Error; err != nil {
		log.Printf("average rating query failed: %v", err)
	}
	averageRating := 0.0
	if avgRating.Avg != nil {
		averageRating = *avgRating.Avg
	}

	ctx.JSON(iris.Map{
		"featuredCleaners": featuredResponses,
		"cities":           cities,
		"stats": iris.Map{
			"activeCleaners": activeCleaners,
			"cityCount":      cityCount,
			"averageRating":  averageRating,
		},
	})
}
