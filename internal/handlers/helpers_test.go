package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/auth"
	apierrors "github.com/GeorgeR-1/jd-ticketing-project-rest/internal/errors"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/mail"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/metrics"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/repository"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type outbox struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (o *outbox) Send(_ context.Context, msg mail.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, msg)
	return nil
}

func (o *outbox) lastToken() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.sent) == 0 {
		return ""
	}
	body := o.sent[len(o.sent)-1].Body
	return body[strings.Index(body, "token=")+len("token="):]
}

// APITestSuite runs requests through the full router on an in-memory database
type APITestSuite struct {
	suite.Suite
	db      *gorm.DB
	router  *gin.Engine
	tokens  *auth.TokenManager
	outbox  *outbox
	metrics *metrics.Metrics
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.db = testutil.NewDB(suite.T())
	suite.tokens = auth.NewTokenManager("handler-secret", time.Hour)
	suite.outbox = &outbox{}
	suite.metrics = metrics.New()

	userRepo := repository.NewUserRepository(suite.db)
	roleRepo := repository.NewRoleRepository(suite.db)
	projectRepo := repository.NewProjectRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	tokenRepo := repository.NewConfirmationTokenRepository(suite.db)

	confirmations := services.NewConfirmationService(tokenRepo, suite.outbox, "http://localhost:8080")
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)

	suite.router = NewRouter(Services{
		Auth:          services.NewAuthService(userRepo, suite.tokens),
		Confirmations: confirmations,
		Users:         services.NewUserService(userRepo, roleRepo, projectRepo, taskRepo, confirmations),
		Roles:         services.NewRoleService(roleRepo),
		Projects:      services.NewProjectService(projectRepo, userRepo, taskService),
		Tasks:         taskService,
	}, RouterOptions{Metrics: suite.metrics, DB: sqlDB})
}

// tokenFor signs a session token for an existing user
func (suite *APITestSuite) tokenFor(user *models.User) string {
	token, err := suite.tokens.Generate(*user)
	suite.Require().NoError(err)
	return token
}

func (suite *APITestSuite) request(method, url, token string, body any) (*httptest.ResponseRecorder, apierrors.Response) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var resp apierrors.Response
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// dataAs re-decodes the envelope data into out
func (suite *APITestSuite) dataAs(resp apierrors.Response, out any) {
	raw, err := json.Marshal(resp.Data)
	suite.Require().NoError(err)
	suite.Require().NoError(json.Unmarshal(raw, out))
}
