package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/internal/application/service"
	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	educationUC "github.com/khoahotran/portfolio/internal/application/usecase/education"
	experienceUC "github.com/khoahotran/portfolio/internal/application/usecase/experience"
	skillUC "github.com/khoahotran/portfolio/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []service.Email
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, email service.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)
	return m.err
}

type RouterTestSuite struct {
	suite.Suite
	Router *gin.Engine
	mailer *recordingMailer
	logs   *observer.ObservedLogs
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.ErrorLevel)
	log := logger.NewFromZap(zap.New(core))
	s.logs = logs
	s.mailer = &recordingMailer{}

	experienceRepo := persistence.NewStaticExperienceRepo()
	sendUC := contactUC.NewSendContactUseCase(s.mailer, contactUC.MailSettings{
		Sender:   "owner@example.com",
		Receiver: "inbox@example.com",
		Timeout:  time.Second,
	}, log)

	s.Router = NewRouter(Handlers{
		Experience: NewExperienceHandler(
			experienceUC.NewListExperiencesUseCase(experienceRepo, log),
			experienceUC.NewGetExperienceUseCase(experienceRepo, nil, log),
			log,
		),
		Education: NewEducationHandler(educationUC.NewEducationUseCase(persistence.NewStaticEducationRepo()), log),
		Contact:   NewContactHandler(sendUC, log),
		Site:      NewSiteHandler(skillUC.NewListSkillsUseCase(persistence.NewStaticSkillRepo()), persistence.Manifest()),
	}, log)
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *RouterTestSuite) decode(rr *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), v))
}

func (s *RouterTestSuite) Test_Health() {
	rr := s.do(http.MethodGet, "/api/health", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.NotEmpty(rr.Header().Get(HeaderRequestID))
}

func (s *RouterTestSuite) Test_GetExperience_Altus() {
	rr := s.do(http.MethodGet, "/api/experiences/internship-altus", nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	var dto ExperienceDTO
	s.decode(rr, &dto)
	s.Equal("internship-altus", dto.Slug)
	s.Equal("Software Developer", dto.Title)
	s.Contains(dto.Company, "Altus Logistics")
	s.NotEmpty(dto.Responsibilities)
	s.NotEmpty(dto.Technologies)
}

func (s *RouterTestSuite) Test_GetExperience_NotFound() {
	rr := s.do(http.MethodGet, "/api/experiences/does-not-exist", nil)
	s.Equal(http.StatusNotFound, rr.Code)

	var body map[string]string
	s.decode(rr, &body)
	s.Equal("Experience not found", body["message"])
}

func (s *RouterTestSuite) Test_ListExperiences_SummaryOnly() {
	rr := s.do(http.MethodGet, "/api/experiences", nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	var raw []map[string]any
	s.decode(rr, &raw)
	s.Require().Len(raw, 2)

	seen := map[string]bool{}
	for _, item := range raw {
		slug := item["slug"].(string)
		s.False(seen[slug], "duplicate slug %s", slug)
		seen[slug] = true

		for _, detailOnly := range []string{"responsibilities", "technologies", "company_url", "locations_url", "current_period"} {
			s.NotContains(item, detailOnly)
		}
	}
	s.Equal("internship-altus", raw[0]["slug"])
	s.Contains(raw[0]["company"], "Altus Logistics")
}

func (s *RouterTestSuite) Test_ListThenDetail_EverySlugResolves() {
	var list []ExperienceSummaryDTO
	s.decode(s.do(http.MethodGet, "/api/experiences", nil), &list)

	for _, item := range list {
		rr := s.do(http.MethodGet, "/api/experiences/"+item.Slug, nil)
		s.Equal(http.StatusOK, rr.Code, item.Slug)

		var dto ExperienceDTO
		s.decode(rr, &dto)
		s.Equal(item.Slug, dto.Slug)
		s.Equal(item.Title, dto.Title)
	}
}

func (s *RouterTestSuite) Test_GetEducation_Stable() {
	first := s.do(http.MethodGet, "/api/education", nil)
	second := s.do(http.MethodGet, "/api/education", nil)
	s.Require().Equal(http.StatusOK, first.Code)
	s.Equal(first.Body.String(), second.Body.String())

	var dto EducationDTO
	s.decode(first, &dto)
	s.Equal("Paramadina University", dto.Institution)
	s.Equal("3.35/4.00", dto.GPA)
	s.Len(dto.Achievements, 2)
	s.Len(dto.Stats, 2)
}

func (s *RouterTestSuite) Test_ListSkills() {
	rr := s.do(http.MethodGet, "/api/skills", nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	var skills []SkillDTO
	s.decode(rr, &skills)
	s.Len(skills, 12)
	s.Equal(1, skills[0].Row)
	s.Equal(2, skills[len(skills)-1].Row)
}

func (s *RouterTestSuite) Test_Manifest() {
	rr := s.do(http.MethodGet, "/manifest.webmanifest", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Header().Get("Content-Type"), "application/manifest+json")
	s.Contains(rr.Body.String(), `"short_name":"My Portofolio"`)
}

func (s *RouterTestSuite) Test_Send_Success() {
	body, _ := json.Marshal(gin.H{"name": "A", "email": "a@b.com", "subject": "S", "message": "M"})
	rr := s.do(http.MethodPost, "/api/send", body)
	s.Require().Equal(http.StatusOK, rr.Code)

	var resp MessageResponse
	s.decode(rr, &resp)
	s.Equal("Email sent successfully", resp.Message)

	s.Require().Len(s.mailer.sent, 1)
	html := s.mailer.sent[0].HTMLBody
	for _, v := range []string{"A", "a@b.com", "S", "M"} {
		s.Contains(html, ">"+v+"<")
	}
}

func (s *RouterTestSuite) Test_Send_MissingFields() {
	payloads := []gin.H{
		{"name": "", "email": "a@b.com", "subject": "S", "message": "M"},
		{"email": "a@b.com", "subject": "S", "message": "M"},
		{"name": "A", "email": "", "subject": "S", "message": "M"},
		{"name": "A", "email": "a@b.com", "subject": "", "message": "M"},
		{"name": "A", "email": "a@b.com", "subject": "S"},
	}

	for _, p := range payloads {
		body, _ := json.Marshal(p)
		rr := s.do(http.MethodPost, "/api/send", body)
		s.Equal(http.StatusBadRequest, rr.Code, "%v", p)

		var resp map[string]string
		s.decode(rr, &resp)
		s.Equal("Missing fields", resp["message"])
	}
	s.Empty(s.mailer.sent)
}

func (s *RouterTestSuite) Test_Send_MalformedBody() {
	rr := s.do(http.MethodPost, "/api/send", []byte(`{"name":`))
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Empty(s.mailer.sent)
}

func (s *RouterTestSuite) Test_Send_TransportFailure() {
	s.mailer.err = errors.New("dial tcp smtp.gmail.com:587: connection refused")

	body, _ := json.Marshal(gin.H{"name": "A", "email": "a@b.com", "subject": "S", "message": "M"})
	rr := s.do(http.MethodPost, "/api/send", body)
	s.Equal(http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	s.decode(rr, &resp)
	s.Equal("Failed to send email", resp["message"])
	assert.NotContains(s.T(), rr.Body.String(), "connection refused")
	assert.NotContains(s.T(), rr.Body.String(), "smtp.gmail.com")

	s.Require().Equal(1, s.logs.Len(), "dispatch failure is logged once")
	s.Equal("Failed to send email", s.logs.All()[0].Message)
}
