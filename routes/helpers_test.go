package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"cleanmorocco-server/models"
	"cleanmorocco-server/storage"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory database with the production schema.
// Shared cache plus a single connection keeps the memory DB alive and
// consistent across gorm's pool.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, storage.Migrate(db))
	return db
}

// newTestApp builds an iris app the way main does, with the validator wired,
// and registers the given route setup.
func newTestApp(t *testing.T, register func(app *iris.Application)) *iris.Application {
	t.Helper()

	app := iris.New()
	app.Validator = validator.New()
	register(app)
	require.NoError(t, app.Build())
	return app
}

type sentEmail struct {
	To      string
	Subject string
}

// stubSender records outgoing mail instead of delivering it.
type stubSender struct {
	mu   sync.Mutex
	sent []sentEmail
}

func (s *stubSender) Send(to, subject, html string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentEmail{To: to, Subject: subject})
	return nil
}

func (s *stubSender) all() []sentEmail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentEmail(nil), s.sent...)
}

func doJSON(t *testing.T, app *iris.Application, method, path string, body interface{}, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, m := range mutate {
		m(req)
	}

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func mustCity(t *testing.T, db *gorm.DB, name, slug string) models.City {
	t.Helper()
	city := models.City{Name: name, Slug: slug}
	require.NoError(t, db.Create(&city).Error)
	return city
}

type cleanerSpec struct {
	name     string
	slug     string
	cityID   uint
	price    *int
	rating   *float64
	reviews  int
	active   bool
	verified bool
	email    *string
	services []string
}

func mustCleaner(t *testing.T, db *gorm.DB, spec cleanerSpec) models.Cleaner {
	t.Helper()
	cleaner := models.Cleaner{
		Name:         spec.name,
		Slug:         spec.slug,
		CityID:       spec.cityID,
		PricePerHour: spec.price,
		Rating:       spec.rating,
		ReviewCount:  spec.reviews,
		IsActive:     spec.active,
		IsVerified:   spec.verified,
		Email:        spec.email,
	}
	if spec.services != nil {
		require.NoError(t, cleaner.SetServiceList(spec.services))
	}
	require.NoError(t, db.Create(&cleaner).Error)
	return cleaner
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
