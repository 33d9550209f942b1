package routes

import (
	"fmt"
	"log"
	"strings"

	"cleanmorocco-server/models"
	"cleanmorocco-server/storage"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

const reviewPreviewSize = 3

// CleanerHandler serves the public cleaner listings: the filterable list,
// the faceted listings payload and single profiles.
type CleanerHandler struct {
	DB    *gorm.DB
	Cache *storage.Cache
}

func NewCleanerHandler(db *gorm.DB, cache *storage.Cache) *CleanerHandler {
	return &CleanerHandler{DB: db, Cache: cache}
}

// CleanerFilter is the bag of optional listing constraints. A nil/empty
// dimension means unconstrained.
type CleanerFilter struct {
	City     string
	Service  string
	MinPrice *int
	MaxPrice *int
	Rating   *float64
}

func (f CleanerFilter) cacheKey() string {
	var sb strings.Builder
	sb.WriteString("cleaners:v1:city=")
	sb.WriteString(f.City)
	sb.WriteString(":service=")
	sb.WriteString(f.Service)
	if f.MinPrice != nil {
		fmt.Fprintf(&sb, ":min=%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		fmt.Fprintf(&sb, ":max=%d", *f.MaxPrice)
	}
	if f.Rating != nil {
		fmt.Fprintf(&sb, ":rating=%g", *f.Rating)
	}
	return sb.String()
}

type CityRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ReviewPreview struct {
	ID        uint   `json:"id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
	User      struct {
		Name string `json:"name"`
	} `json:"user"`
}

type CleanerResponse struct {
	ID           uint                      `json:"id"`
	Slug         string                    `json:"slug"`
	Name         string                    `json:"name"`
	City         CityRef                   `json:"city"`
	Bio          string                    `json:"bio"`
	PricePerHour *int                      `json:"pricePerHour"`
	PhotoURL     string                    `json:"photoUrl"`
	PhoneE164    string                    `json:"phoneE164"`
	Services     []string                  `json:"services"`
	Languages    []string                  `json:"languages"`
	Availability models.WeeklyAvailability `json:"availability"`
	Rating       *float64                  `json:"rating"`
	ReviewCount  int                       `json:"reviewCount"`
	IsVerified   bool                      `json:"isVerified"`
	Reviews      []ReviewPreview           `json:"reviews"`
}

func parseFilter(ctx iris.Context) CleanerFilter {
	filter := CleanerFilter{
		City:    strings.TrimSpace(ctx.URLParamDefault("city", "")),
		Service: strings.TrimSpace(ctx.URLParamDefault("service", "")),
	}
	if v, err := ctx.URLParamInt("minPrice"); err == nil {
		filter.MinPrice = &v
	}
	if v, err := ctx.URLParamInt("maxPrice"); err == nil {
		filter.MaxPrice = &v
	}
	if v, err := ctx.URLParamFloat64("rating"); err == nil {
		filter.Rating = &v
	}
	return filter
}

// queryCleaners runs the listing engine against the store. Only active
// cleaners are eligible; cleaners lacking a price or rating are excluded
// whenever the corresponding bound is requested (NULL never satisfies a
// comparison). Default order: verified first, then rating, then review count.
func (h *CleanerHandler) queryCleaners(filter CleanerFilter) ([]models.Cleaner, error) {
	query := h.DB.Model(&models.Cleaner{}).
		Select("cleaners.*").
		Where("cleaners.is_active = ?", true).
		Preload("City").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.User")

	if filter.City != "" {
		query = query.
			Joins("JOIN cities ON cities.id = cleaners.city_id").
			Where("cities.slug = ?", filter.City)
	}
	if filter.Service != "" {
		query = query.Where("cleaners.services LIKE ?", "%"+filter.Service+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("cleaners.price_per_hour >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("cleaners.price_per_hour <= ?", *filter.MaxPrice)
	}
	if filter.Rating != nil {
		query = query.Where("cleaners.rating >= ?", *filter.Rating)
	}

	var cleaners []models.Cleaner
	err := query.
		Order("cleaners.is_verified DESC").
		Order("cleaners.rating DESC NULLS LAST").
		Order("cleaners.review_count DESC").
		Find(&cleaners).Error
	return cleaners, err
}

func toCleanerResponse(c models.Cleaner) CleanerResponse {
	photo := c.PhotoURL
	if photo == "" {
		photo = "/images/cleaners/default.jpg"
	}

	resp := CleanerResponse{
		ID:           c.ID,
		Slug:         c.Slug,
		Name:         c.Name,
		City:         CityRef{Name: c.City.Name, Slug: c.City.Slug},
		Bio:          c.Bio,
		PricePerHour: c.PricePerHour,
		PhotoURL:     photo,
		PhoneE164:    c.PhoneE164,
		Services:     c.ServiceList(),
		Languages:    c.LanguageList(),
		Availability: c.AvailabilityWindows(),
		Rating:       c.Rating,
		ReviewCount:  c.ReviewCount,
		IsVerified:   c.IsVerified,
		Reviews:      []ReviewPreview{},
	}

	for i, review := range c.Reviews {
		if i == reviewPreviewSize {
			break
		}
		preview := ReviewPreview{
			ID:        review.ID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		preview.User.Name = review.User.Name
		resp.Reviews = append(resp.Reviews, preview)
	}
	return resp
}

// ListCleaners - GET /api/cleaners?city=&service=&minPrice=&maxPrice=&rating=
// A failed query degrades to an empty list rather than surfacing the store
// error.
func (h *CleanerHandler) ListCleaners(ctx iris.Context) {
	filter := parseFilter(ctx)
	key := filter.cacheKey()

	var cached []CleanerResponse
	if h.Cache.GetJSON(ctx.Request().Context(), key, &cached) {
		ctx.Header("Cache-Control", "public, s-maxage=600, stale-while-revalidate=1200")
		ctx.JSON(cached)
		return
	}

	cleaners, err := h.queryCleaners(filter)
	if err != nil {
		log.Printf("cleaner listing query failed: %v", err)
		ctx.JSON([]CleanerResponse{})
		return
	}

	result := make([]CleanerResponse, 0, len(cleaners))
	for _, c := range cleaners {
		result = append(result, toCleanerResponse(c))
	}

	h.Cache.SetJSON(ctx.Request().Context(), key, result, storage.CleanerListTTL)
	ctx.Header("Cache-Control", "public, s-maxage=600, stale-while-revalidate=1200")
	ctx.JSON(result)
}

// ListListings - GET /api/cleaner-listings
// The full listings payload: filtered cleaners plus the faceted city set
// (only cities that currently have at least one active cleaner).
func (h *CleanerHandler) ListListings(ctx iris.Context) {
	filter := parseFilter(ctx)

	cleaners, err := h.queryCleaners(filter)
	if err != nil {
		log.Printf("cleaner listing query failed: %v", err)
		ctx.JSON(iris.Map{"cleaners": []CleanerResponse{}, "cities": []CityWithCount{}, "total": 0})
		return
	}

	cities, err := queryCitiesWithCounts(h.DB, true)
	if err != nil {
		log.Printf("listing city facets query failed: %v", err)
		cities = []CityWithCount{}
	}

	result := make([]CleanerResponse, 0, len(cleaners))
	for _, c := range cleaners {
		result = append(result, toCleanerResponse(c))
	}

	ctx.JSON(iris.Map{
		"cleaners": result,
		"cities":   cities,
		"total":    len(result),
	})
}

// GetCleanerBySlug - GET /api/cleaners/{slug}
// Profile payload: the cleaner with all reviews (newest first) and up to 4
// similar cleaners from the same city.
func (h *CleanerHandler) GetCleanerBySlug(ctx iris.Context) {
	slug := ctx.Params().Get("slug")

	var cleaner models.Cleaner
	err := h.DB.
		Preload("City").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.User").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&cleaner).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			ctx.StatusCode(iris.StatusNotFound)
			ctx.JSON(iris.Map{"error": "not_found", "message": "Schoonmaker niet gevonden"})
			return
		}
		log.Printf("cleaner detail query failed: %v", err)
		ctx.StatusCode(iris.StatusInternalServerError)
		ctx.JSON(iris.Map{"error": "server_error", "message": "Er is een fout opgetreden"})
		return
	}

	profile := toCleanerResponse(cleaner)
	profile.Reviews = allReviewPreviews(cleaner)

	var similar []models.Cleaner
	if err := h.DB.
		Preload("City").
		Where("city_id = ? AND is_active = ? AND id != ?", cleaner.CityID, true, cleaner.ID).
		Order("is_verified DESC").
		Order("rating DESC NULLS LAST").
		Limit(4).
		Find(&similar).Error; err != nil {
		log.Printf("similar cleaners query failed: %v", err)
		similar = nil
	}

	similarResponses := make([]CleanerResponse, 0, len(similar))
	for _, c := range similar {
		similarResponses = append(similarResponses, toCleanerResponse(c))
	}

	ctx.JSON(iris.Map{
		"cleaner": profile,
		"similar": similarResponses,
	})
}

func allReviewPreviews(c models.Cleaner) []ReviewPreview {
	previews := make([]ReviewPreview, 0, len(c.Reviews))
	for _, review := range c.Reviews {
		preview := ReviewPreview{
			ID:        review.ID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		preview.User.Name = review.User.Name
		previews = append(previews, preview)
	}
	return previews
}
