package main

import (
	"log"
	"os"

	"cleanmorocco-server/routes"
	"cleanmorocco-server/services"
	"cleanmorocco-server/storage"
	"cleanmorocco-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
)

func main() {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, err := storage.Connect(dsn)
	if err != nil {
		log.Panic("error connecting to db: " + err.Error())
	}

	cache := storage.NewCache(storage.NewRedis(os.Getenv("REDIS_URL")))

	var sender services.EmailSender
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		from := os.Getenv("BOOKING_FROM")
		if from == "" {
			from = "CleanMorocco <noreply@cleanmorocco.com>"
		}
		sender = services.NewResendSender(apiKey, from)
	} else {
		log.Println("RESEND_API_KEY not set, booking emails disabled")
	}
	mailer := services.NewBookingMailer(sender, os.Getenv("ADMIN_EMAIL"), os.Getenv("SITE_BASE_URL"))

	adminUser := os.Getenv("ADMIN_USER")
	adminPass := os.Getenv("ADMIN_PASS")
	if adminUser == "" || adminPass == "" {
		log.Panic("ADMIN_USER and ADMIN_PASS environment variables are required")
	}

	app := iris.New()
	app.Validator = validator.New()
	app.Use(iris.Compression)

	home := routes.NewHomeHandler(db)
	cleaners := routes.NewCleanerHandler(db, cache)
	cities := routes.NewCityHandler(db, cache)
	bookings := routes.NewBookingHandler(db, mailer)
	reviews := routes.NewReviewHandler(db)
	admin := routes.NewAdminHandler(db)

	guard := utils.AdminBasicAuth(adminUser, adminPass)

	app.Get("/", home.Home)

	api := app.Party("/api")
	{
		api.Get("/cleaners", cleaners.ListCleaners)
		api.Get("/cleaners/{slug}", cleaners.GetCleanerBySlug)
		api.Post("/cleaners/{slug}/reviews", reviews.CreateReview)
		api.Get("/cleaner-listings", cleaners.ListListings)
		api.Get("/cities", cities.ListCities)

		api.Post("/booking-requests", bookings.CreateBookingRequest)
		// Deprecated alias for the old booking endpoint; same contract.
		api.Post("/book", bookings.CreateBookingRequest)

		api.Get("/booking-requests", guard, admin.ListBookingRequests)
		api.Patch("/booking-requests/{id:uint}/status", guard, admin.UpdateBookingStatus)
	}

	adminParty := app.Party("/admin", guard)
	{
		adminParty.Get("/", admin.Dashboard)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	app.Listen(":" + port)
}
