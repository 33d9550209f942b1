package routes

import (
	"log"

	"cleanmorocco-server/models"
	"cleanmorocco-server/storage"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

const cityListCacheKey = "cities:v1:all"

// CityHandler serves the city reference data.
type CityHandler struct {
	DB    *gorm.DB
	Cache *storage.Cache
}

func NewCityHandler(db *gorm.DB, cache *storage.Cache) *CityHandler {
	return &CityHandler{DB: db, Cache: cache}
}

type CityWithCount struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Region       string `json:"region,omitempty"`
	CleanerCount int    `json:"cleanerCount"`
}

// queryCitiesWithCounts annotates every city with its active-cleaner count.
// With facetedOnly, cities without any active cleaner are dropped (the
// listings sidebar); otherwise zero counts are reported as-is.
func queryCitiesWithCounts(db *gorm.DB, facetedOnly bool) ([]CityWithCount, error) {
	query := db.Model(&models.City{}).
		Select("cities.id, cities.name, cities.slug, cities.region, COUNT(cleaners.id) AS cleaner_count").
		Joins("LEFT JOIN cleaners ON cleaners.city_id = cities.id AND cleaners.is_active = ? AND cleaners.deleted_at IS NULL", true).
		Group("cities.id, cities.name, cities.slug, cities.region").
		Order("cities.name ASC")
	if facetedOnly {
		query = query.Having("COUNT(cleaners.id) > 0")
	}

	var cities []CityWithCount
	if err := query.Scan(&cities).Error; err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []CityWithCount{}
	}
	return cities, nil
}

// ListCities - GET /api/cities
// All cities with their active-cleaner counts, including zero. Cached for an
// hour; cities change about never.
func (h *CityHandler) ListCities(ctx iris.Context) {
	var cached []CityWithCount
	if h.Cache.GetJSON(ctx.Request().Context(), cityListCacheKey, &cached) {
		ctx.Header("Cache-Control", "public, s-maxage=3600, stale-while-revalidate=7200")
		ctx.JSON(cached)
		return
	}

	cities, err := queryCitiesWithCounts(h.DB, false)
	if err != nil {
		log.Printf("city listing query failed: %v", err)
		ctx.JSON([]CityWithCount{})
		return
	}

	h.Cache.SetJSON(ctx.Request().Context(), cityListCacheKey, cities, storage.CityListTTL)
	ctx.Header("Cache-Control", "public, s-maxage=3600, stale-while-revalidate=7200")
	ctx.JSON(cities)
}
