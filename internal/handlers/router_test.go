package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/teamhub/teamhub/internal/constants"
	"github.com/teamhub/teamhub/internal/database"
	"github.com/teamhub/teamhub/internal/models"
	"github.com/teamhub/teamhub/internal/services"
	"github.com/teamhub/teamhub/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testAdminCode = "admin-code"
	testTeamCode  = "team-code"
)

// testEnv wires the full API surface against an in-memory database, the way
// cmd/server does against the real one.
type testEnv struct {
	db     *gorm.DB
	store  *store.GormStore
	router *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Document{},
		&models.Ticket{},
		&models.GlobalSettings{},
	)
	require.NoError(t, err)

	database.SetDB(db)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	entityStore := store.NewGormStore(db)
	authService := services.NewAuthService(testAdminCode, testTeamCode)
	documentService := services.NewDocumentService(entityStore)
	ticketService := services.NewTicketService(entityStore, nil)
	settingsService := services.NewSettingsService(entityStore)

	authHandler := NewAuthHandler(authService)
	documentHandler := NewDocumentHandler(documentService)
	ticketHandler := NewTicketHandler(ticketService)
	linksHandler := NewLinksHandler(settingsService)
	streamHandler := NewStreamHandler(entityStore)

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	RegisterRoutes(r, authHandler, documentHandler, ticketHandler, linksHandler, streamHandler)

	return &testEnv{db: db, store: entityStore, router: r}
}

// loginAs returns the session cookies of a fresh login with the given code.
func (env *testEnv) loginAs(t *testing.T, accessCode string) []*http.Cookie {
	t.Helper()

	w := env.request(t, http.MethodPost, "/api/auth/login", map[string]string{"access_code": accessCode}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func (env *testEnv) request(t *testing.T, method, url string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
