// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/strategic-planning/backend/config"
	"github.com/strategic-planning/backend/internal/infra/db"
	"github.com/strategic-planning/backend/internal/infra/dependency"
	"github.com/strategic-planning/backend/internal/integration/email"
	"github.com/strategic-planning/backend/internal/integration/persistence/model"
	"github.com/strategic-planning/backend/test/integration/mock"
)

const (
	testJWTSecret   = "test-jwt-secret-key-for-testing-purposes"
	testReviewInbox = "planning-review@moh.gov.et"
	testBucket      = "plan-reports"
)

// testContext holds the state of one scenario.
type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	redis       *redis.Client
	storage     *mock.StorageServer
	sender      *email.MockEmailSender
	timeMock    *mock.Time
	accessToken string
	callerID    uuid.UUID
	saved       map[string]string
}

type response struct {
	status  int
	headers http.Header
	body    any
	raw     []byte
}

// server is shared by every scenario; scenarios reset the stores it reads.
type server struct {
	uri      string
	injector *dependency.Injector
}

var (
	serverInit   sync.Once
	sharedServer *server
	sharedDB     *mock.Db
	sharedStore  *mock.StorageServer
	sharedSender *email.MockEmailSender
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		sharedDB = mock.NewDb("strategic_planning", model.All())
		sharedStore = mock.NewStorageServer()
		sharedStore.Start()
		sharedSender = email.NewMockEmailSender()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: mock.NewTime(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)

	// Fixture steps
	ctx.Step(`^an organization (\d+) named "([^"]*)" exists$`, test.anOrganizationExists)
	ctx.Step(`^a strategic objective "([^"]*)" with weight "([^"]*)" exists$`, test.anObjectiveExists)
	ctx.Step(`^a default strategic objective "([^"]*)" with weight "([^"]*)" exists$`, test.aDefaultObjectiveExists)

	// Identity steps
	ctx.Step(`^I am a "([^"]*)" of organization (\d+)$`, test.iAmARoleOfOrganization)
	ctx.Step(`^my access token has expired$`, test.myAccessTokenHasExpired)
	ctx.Step(`^I am not authenticated$`, test.iAmNotAuthenticated)

	// Header steps
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)
	ctx.Step(`^the response body should contain "([^"]*)"$`, test.theResponseBodyShouldContain)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Side effect steps
	ctx.Step(`^the email worker processes the queue$`, test.theEmailWorkerProcessesTheQueue)
	ctx.Step(`^(\d+) emails? should have been sent to "([^"]*)"$`, test.emailsShouldHaveBeenSentTo)
	ctx.Step(`^the report archive should have received (\d+) uploads?$`, test.theReportArchiveShouldHaveReceivedUploads)
	ctx.Step(`^the report archive is unavailable$`, test.theReportArchiveIsUnavailable)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.callerID = uuid.Nil
	t.saved = make(map[string]string)
	t.timeMock = mock.NewTime()

	t.db = sharedDB
	t.storage = sharedStore
	t.sender = sharedSender
	t.redis = mock.NewRedis()

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(t.redis); err != nil {
		return err
	}
	t.storage.Reset()
	t.sender.Reset()
	if sharedServer != nil {
		sharedServer.injector.ExportRateLimiter.Reset()
	}
	return nil
}

func (t *testContext) startServer() error {
	var startErr error
	serverInit.Do(func() {
		cfg := testConfig()
		database := db.NewDatabase(sharedDB.DbConn, &cfg.Database)

		injector, err := dependency.NewInjector(context.Background(), cfg, database, dependency.Options{
			Redis:       mock.NewRedis(),
			EmailSender: sharedSender,
		})
		if err != nil {
			startErr = err
			return
		}

		srv := httptest.NewServer(injector.Router.Setup("test"))
		sharedServer = &server{uri: srv.URL, injector: injector}
	})
	if startErr != nil {
		return startErr
	}
	if sharedServer == nil {
		return fmt.Errorf("test server failed to start")
	}
	t.uri = sharedServer.uri

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := t.client.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("test server is not healthy")
}

// testConfig enables every optional collaborator against in-process fakes.
func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret

	cfg.Redis.Enabled = true
	cfg.Redis.SummaryTTL = time.Minute

	cfg.Storage.Enabled = true
	cfg.Storage.Endpoint = sharedStore.GetUrl()
	cfg.Storage.Bucket = testBucket
	cfg.Storage.AccessKey = "test-access-key"
	cfg.Storage.SecretKey = "test-secret-key"
	cfg.Storage.PathStyle = true

	cfg.Email.Enabled = true
	cfg.Email.WorkerEnabled = true
	cfg.Email.ReviewInbox = testReviewInbox
	cfg.Email.AppBaseURL = "https://planning.test"
	cfg.Email.BatchSize = 50

	cfg.RateLimit.ExportRequests = 3
	cfg.RateLimit.ExportWindow = time.Minute
	return cfg
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}
