package routes

import (
	"errors"
	"log"
	"time"

	"cleanmorocco-server/models"
	"cleanmorocco-server/services"
	"cleanmorocco-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// BookingHandler owns the booking-request lifecycle: public creation with
// notification fan-out.
type BookingHandler struct {
	DB     *gorm.DB
	Mailer *services.BookingMailer
}

func NewBookingHandler(db *gorm.DB, mailer *services.BookingMailer) *BookingHandler {
	return &BookingHandler{DB: db, Mailer: mailer}
}

// CreateBookingRequestInput is the one booking contract. It merges the two
// historical endpoint variants into the strict one: email and preferred date
// are required, the phone is normalized to E.164, and the request must carry
// either a city slug or a cleaner slug that resolves.
type CreateBookingRequestInput struct {
	FullName      string   `json:"fullName" validate:"required"`
	PhoneE164     string   `json:"phoneE164" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	CitySlug      string   `json:"citySlug"`
	CleanerSlug   string   `json:"cleanerSlug"`
	PreferredDate string   `json:"preferredDate" validate:"required,datetime=2006-01-02"`
	Message       string   `json:"message"`
	Services      []string `json:"services"`
	PropertyType  string   `json:"propertyType"`
	PropertySize  string   `json:"propertySize"`
	Frequency     string   `json:"frequency"`
}

var (
	errUnknownCity = errors.New("unknown city")
	errNoCity      = errors.New("no city resolvable")
)

// CreateBookingRequest - POST /api/booking-requests (alias: POST /api/book,
// deprecated). Validation happens before any write; the upsert-and-insert
// sequence runs in a single transaction so a mid-flight failure leaves
// nothing behind. Emails go out after commit and never affect the outcome.
func (h *BookingHandler) CreateBookingRequest(ctx iris.Context) {
	var input CreateBookingRequestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	phone, ok := utils.NormalizePhoneNumber(input.PhoneE164)
	if !ok {
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{"error": "Telefoonnummer ongeldig (E.164)."})
		return
	}

	if input.CitySlug == "" && input.CleanerSlug == "" {
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{"error": "Kies een stad of een schoonmaker."})
		return
	}

	// Noon local time so the calendar date survives timezone handling on
	// either side of the request boundary.
	date, err := time.ParseInLocation("2006-01-02", input.PreferredDate, time.Local)
	if err != nil {
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{"error": "Ongeldige datum."})
		return
	}
	preferredDate := date.Add(12 * time.Hour)

	var booking models.BookingRequest
	var mailData services.BookingEmailData

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			user = models.User{
				Email: input.Email,
				Name:  input.FullName,
				Phone: phone,
				Role:  models.RoleCustomer,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}

		var city *models.City
		if input.CitySlug != "" {
			var c models.City
			if err := tx.Where("slug = ?", input.CitySlug).First(&c).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errUnknownCity
				}
				return err
			}
			city = &c
		}

		var cleaner *models.Cleaner
		if input.CleanerSlug != "" {
			var cl models.Cleaner
			err := tx.Preload("City").Where("slug = ?", input.CleanerSlug).First(&cl).Error
			switch {
			case err == nil:
				cleaner = &cl
				if city == nil {
					city = &cl.City
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				// An unresolvable cleaner preference is dropped, not fatal.
			default:
				return err
			}
		}

		if city == nil {
			return errNoCity
		}

		email := input.Email
		booking = models.BookingRequest{
			FullName:      input.FullName,
			PhoneE164:     phone,
			Email:         &email,
			UserID:        &user.ID,
			CityID:        city.ID,
			PreferredDate: &preferredDate,
			Status:        models.StatusPending,
		}
		if cleaner != nil {
			booking.CleanerID = &cleaner.ID
		}
		if input.Message != "" {
			message := input.Message
			booking.Message = &message
		}

		intake := models.BookingIntake{
			Services: input.Services,
			Source:   "website",
		}
		if input.PropertyType != "" {
			intake.PropertyType = &input.PropertyType
		}
		if input.PropertySize != "" {
			intake.PropertySize = &input.PropertySize
		}
		if input.Frequency != "" {
			intake.Frequency = &input.Frequency
		}
		if err := booking.SetIntake(intake); err != nil {
			return err
		}

		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		mailData = services.BookingEmailData{
			BookingID:     booking.ID,
			CustomerName:  user.Name,
			CustomerEmail: user.Email,
			CustomerPhone: phone,
			CityName:      city.Name,
			PreferredDate: input.PreferredDate,
			Message:       input.Message,
		}
		if cleaner != nil {
			mailData.CleanerName = cleaner.Name
			if cleaner.Email != nil {
				mailData.CleanerEmail = *cleaner.Email
			}
		}
		return nil
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, errUnknownCity):
			ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{"error": "Onbekende stad."})
		case errors.Is(txErr, errNoCity):
			ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{"error": "Kies een stad of een schoonmaker."})
		default:
			log.Printf("booking request failed: %v", txErr)
			ctx.StopWithJSON(iris.StatusInternalServerError,
				iris.Map{"error": "Er is een fout opgetreden bij het versturen van je aanvraag"})
		}
		return
	}

	h.Mailer.SendBookingNotifications(mailData)

	ctx.JSON(iris.Map{
		"success":   true,
		"bookingId": booking.ID,
		"message":   "Aanvraag succesvol verstuurd. We nemen binnen 2 uur contact op!",
	})
}
