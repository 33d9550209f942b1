package routes

import (
	"errors"
	"log"

	"cleanmorocco-server/models"
	"cleanmorocco-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// ReviewHandler creates reviews and keeps the cleaner aggregate derived:
// rating and review count are recomputed from the reviews table inside the
// insert transaction, never maintained by hand.
type ReviewHandler struct {
	DB *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{DB: db}
}

type CreateReviewInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// CreateReview - POST /api/cleaners/{slug}/reviews
func (h *ReviewHandler) CreateReview(ctx iris.Context) {
	slug := ctx.Params().Get("slug")

	var input CreateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var review models.Review
	var rating float64
	var reviewCount int64

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var cleaner models.Cleaner
		if err := tx.Where("slug = ?", slug).First(&cleaner).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			user = models.User{Email: input.Email, Name: input.Name, Role: models.RoleCustomer}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}

		review = models.Review{
			CleanerID: cleaner.ID,
			UserID:    user.ID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var agg struct {
			Avg   float64
			Count int64
		}
		if err := tx.Model(&models.Review{}).
			Where("cleaner_id = ?", cleaner.ID).
			Select("AVG(rating) AS avg, COUNT(*) AS count").
			Scan(&agg).Error; err != nil {
			return err
		}

		rating = agg.Avg
		reviewCount = agg.Count
		return tx.Model(&models.Cleaner{}).
			Where("id = ?", cleaner.ID).
			Updates(map[string]interface{}{
				"rating":       agg.Avg,
				"review_count": agg.Count,
			}).Error
	})

	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", "Schoonmaker niet gevonden")
			return
		}
		log.Printf("review creation failed: %v", txErr)
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "Er is een fout opgetreden")
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"success": true,
		"review": iris.Map{
			"id":      review.ID,
			"rating":  review.Rating,
			"comment": review.Comment,
		},
		"cleaner": iris.Map{
			"rating":      rating,
			"reviewCount": reviewCount,
		},
	})
}
