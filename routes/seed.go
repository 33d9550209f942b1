package routes

import (
	"errors"
	"fmt"

	"cleanmorocco-server/models"

	"gorm.io/gorm"
)

type seedCleaner struct {
	name         string
	slug         string
	citySlug     string
	phoneE164    string
	bio          string
	photoURL     string
	services     []string
	languages    []string
	pricePerHour int
	isVerified   bool
}

var seedCities = []models.City{
	{Name: "Casablanca", Slug: "casablanca"},
	{Name: "Rabat", Slug: "rabat"},
	{Name: "Marrakesh", Slug: "marrakesh"},
	{Name: "Tangier", Slug: "tangier"},
	{Name: "Fes", Slug: "fes"},
	{Name: "Agadir", Slug: "agadir"},
	{Name: "Tetouan", Slug: "tetouan"},
	{Name: "Oujda", Slug: "oujda"},
	{Name: "Kenitra", Slug: "kenitra"},
	{Name: "Safi", Slug: "safi"},
}

var seedCleaners = []seedCleaner{
	{
		name:         "Amal Cleaning",
		slug:         "amal-cleaning",
		citySlug:     "casablanca",
		phoneE164:    "+212612345678",
		bio:          "Betrouwbare schoonmaak in Casablanca, gespecialiseerd in vakantiehuizen.",
		photoURL:     "/images/cleaners/amal.jpg",
		services:     []string{"diepreiniging", "ramen", "keuken", "badkamer"},
		languages:    []string{"arabisch", "frans"},
		pricePerHour: 90,
		isVerified:   true,
	},
	{
		name:         "Casa Shine",
		slug:         "casa-shine",
		citySlug:     "casablanca",
		phoneE164:    "+212661112233",
		bio:          "Grondige reiniging, flexibele planning ook in het weekend.",
		photoURL:     "/images/cleaners/casashine.jpg",
		services:     []string{"algemeen", "keuken", "badkamer"},
		languages:    []string{"arabisch", "engels"},
		pricePerHour: 85,
	},
	{
		name:         "Ocean Breeze Services",
		slug:         "ocean-breeze-services",
		citySlug:     "casablanca",
		phoneE164:    "+212665550001",
		bio:          "Vakantieverhuur-omloop: check-in schoonmaak, linnen en oplevering.",
		photoURL:     "/images/cleaners/oceanbreeze.jpg",
		services:     []string{"wisselschoonmaak", "ramen", "stofzuigen", "dweilen"},
		languages:    []string{"arabisch", "frans", "engels"},
		pricePerHour: 95,
	},
	{
		name:         "Rabat Clean Team",
		slug:         "rabat-clean-team",
		citySlug:     "rabat",
		phoneE164:    "+212677889900",
		bio:          "Team met oog voor detail, geschikt voor grotere woningen.",
		photoURL:     "/images/cleaners/rabatclean.jpg",
		services:     []string{"algemeen", "diepreiniging", "ramen"},
		languages:    []string{"arabisch", "frans"},
		pricePerHour: 100,
		isVerified:   true,
	},
	{
		name:         "Marrakesh Sparkle",
		slug:         "marrakesh-sparkle",
		citySlug:     "marrakesh",
		phoneE164:    "+212655001122",
		bio:          "Riads en appartementen in de medina, jarenlange ervaring.",
		photoURL:     "/images/cleaners/sparkle.jpg",
		services:     []string{"algemeen", "diepreiniging", "terras"},
		languages:    []string{"arabisch", "frans", "engels"},
		pricePerHour: 80,
		isVerified:   true,
	},
}

// SeedReferenceData upserts the city and cleaner master data by slug. Safe
// to rerun: existing rows are left untouched.
func SeedReferenceData(db *gorm.DB) error {
	for _, city := range seedCities {
		var existing models.City
		err := db.Where("slug = ?", city.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		create := city
		if err := db.Create(&create).Error; err != nil {
			return fmt.Errorf("seed city %s: %w", city.Slug, err)
		}
	}

	for _, sc := range seedCleaners {
		var existing models.Cleaner
		err := db.Where("slug = ?", sc.slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var city models.City
		if err := db.Where("slug = ?", sc.citySlug).First(&city).Error; err != nil {
			return fmt.Errorf("seed cleaner %s: city %s: %w", sc.slug, sc.citySlug, err)
		}

		price := sc.pricePerHour
		cleaner := models.Cleaner{
			Name:         sc.name,
			Slug:         sc.slug,
			CityID:       city.ID,
			PhoneE164:    sc.phoneE164,
			Bio:          sc.bio,
			PhotoURL:     sc.photoURL,
			PricePerHour: &price,
			IsActive:     true,
			IsVerified:   sc.isVerified,
		}
		if err := cleaner.SetServiceList(sc.services); err != nil {
			return err
		}
		if err := cleaner.SetLanguageList(sc.languages); err != nil {
			return err
		}
		if err := db.Create(&cleaner).Error; err != nil {
			return fmt.Errorf("seed cleaner %s: %w", sc.slug, err)
		}
	}

	return nil
}
