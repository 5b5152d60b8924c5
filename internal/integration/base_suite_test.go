package integration_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/cinema-kiosk/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	cfg      app.Config
	services *backingServices
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	services, err := startBackingServices(ctx)
	s.services = services
	if err != nil {
		s.T().Fatalf("failed to start backing services: %s", err)
	}

	s.cfg = app.Config{
		Port:          3000,
		Env:           "test",
		Input:         app.InputNone,
		Display:       app.DisplayNone,
		Journal:       app.JournalRedis,
		JournalBuffer: 16,
		DB: app.DBConfig{
			DSN:          services.dsn,
			MaxOpenConns: 4,
			MaxIdleTime:  2 * time.Minute,
		},
		Redis: app.RedisConfig{
			URL:          services.journalAddr,
			MaxOpenConns: 4,
			MaxIdleConns: 2,
			MaxIdleTime:  2 * time.Minute,
		},
	}
}

func (s *BaseSuite) TearDownSuite() {
	if s.services == nil {
		return
	}
	if err := s.services.terminate(); err != nil {
		log.Printf("failed to terminate backing services: %s", err)
	}
}

// newApp builds an application against the suite containers. It is closed
// when the test ends.
func (s *BaseSuite) newApp() *TestApp {
	testApp, err := newTestApp(s.cfg)
	s.Require().NoError(err, "cannot initialize app")

	s.T().Cleanup(testApp.Close)

	return testApp
}

type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	ExpectedStatus   int
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		req, err := prepareRequest(s.Method, s.URL, s.Body, s.Headers)
		require.NoError(t, err)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		rec := httptest.NewRecorder()
		testApp.App.Routes().ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
