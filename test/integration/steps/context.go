//go:build integration

// Package steps holds the Godog step definitions of the API feature suite.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	testJWTIssuer = "finance-tracker"
)

// suite is shared by every scenario. Scenarios run sequentially and reset it in before.
type suite struct {
	server   *httptest.Server
	injector *dependency.Injector
	db       *mock.Db
	timeMock *mock.Time
	emailApi *mock.ApiMock
}

var (
	suiteInit   sync.Once
	sharedSuite *suite
)

type testContext struct {
	*suite
	client      *http.Client
	headers     map[string]string
	response    *response
	accessToken string
	userID      uuid.UUID
	users       map[string]uuid.UUID
	saved       map[string]string
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite starts the API once for the whole run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		startSuite()
	})
	ctx.AfterSuite(func() {
		if sharedSuite != nil {
			sharedSuite.server.Close()
			sharedSuite.emailApi.Close()
		}
	})
}

func startSuite() {
	suiteInit.Do(func() {
		s := &suite{
			db:       mock.NewDb(model.All()...),
			timeMock: mock.NewTime(),
			emailApi: mock.NewApiServer(),
		}
		s.emailApi.Start()

		cfg := &config.Config{
			Server:      config.ServerConfig{Environment: "test"},
			JWT:         config.JWTConfig{Secret: testJWTSecret, Issuer: testJWTIssuer},
			Idempotency: config.IdempotencyConfig{TTL: time.Hour},
			Sweep:       config.SweepConfig{Interval: time.Hour, BatchSize: 100, ChargeEnabled: true},
			Email: config.EmailConfig{
				ResendAPIKey:  "re_test_key",
				ResendBaseURL: s.emailApi.GetUrl(),
				FromName:      "Finance Tracker",
				FromEmail:     "noreply@example.com",
				AppBaseURL:    "http://localhost:5173",
			},
		}

		injector, err := dependency.NewInjector(cfg, s.db, dependency.Options{
			Clock: s.timeMock,
			Redis: mock.NewRedis(),
		})
		if err != nil {
			panic("failed to wire dependencies: " + err.Error())
		}
		s.injector = injector
		s.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))

		sharedSuite = s
	})
}

// InitializeScenario registers every step against a fresh scenario context.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startSuite()

	test := &testContext{
		suite:  sharedSuite,
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Setup steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Given(`^the email API responds with status (\d+)$`, test.theEmailAPIRespondsWithStatus)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^the sweep runs$`, test.theSweepRuns)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Email assertion steps
	ctx.Then(`^the email API should have received (\d+) emails?$`, test.theEmailAPIShouldHaveReceivedEmails)
	ctx.Then(`^the email (\d+) should be sent to "([^"]*)"$`, test.theEmailShouldBeSentTo)
}

func (t *testContext) before() error {
	t.headers = map[string]string{}
	t.response = nil
	t.accessToken = ""
	t.userID = uuid.Nil
	t.users = map[string]uuid.UUID{}
	t.saved = map[string]string{}

	t.timeMock.Reset()
	t.emailApi.Clear()
	t.emailApi.SetResponse(-1, http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "email-id"})

	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}
