package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainassessment "sitecheck/internal/domain/assessment"
	"sitecheck/internal/ports"
	assessmentuc "sitecheck/internal/usecase/assessment"
)

type stubAssessmentService struct {
	created      domainassessment.Assessment
	createErr    error
	getErr       error
	completeErr  error
	createInput  assessmentuc.CreateInput
	createCalled bool
}

func (s *stubAssessmentService) Create(_ context.Context, input assessmentuc.CreateInput) (domainassessment.Assessment, error) {
	s.createCalled = true
	s.createInput = input
	if s.createErr != nil {
		return domainassessment.Assessment{}, s.createErr
	}
	return s.created, nil
}

func (s *stubAssessmentService) Get(context.Context, string, string) (domainassessment.Assessment, error) {
	if s.getErr != nil {
		return domainassessment.Assessment{}, s.getErr
	}
	return s.created, nil
}

func (s *stubAssessmentService) List(context.Context, string) ([]domainassessment.Assessment, error) {
	return []domainassessment.Assessment{s.created}, nil
}

func (s *stubAssessmentService) UpdateAnswer(context.Context, assessmentuc.UpdateAnswerInput) (domainassessment.QuestionAnswer, error) {
	return domainassessment.QuestionAnswer{}, nil
}

func (s *stubAssessmentService) Complete(context.Context, string, string) error {
	return s.completeErr
}

func (s *stubAssessmentService) UploadEvidence(context.Context, assessmentuc.UploadEvidenceInput) (string, error) {
	return "https://cdn.test/x.jpg", nil
}

func (s *stubAssessmentService) Result(context.Context, string, string) (domainassessment.Result, error) {
	return domainassessment.Calculate(s.created), nil
}

type stubVerifier struct {
	owner string
}

func (v stubVerifier) Verify(_ context.Context, token string) (string, error) {
	if token != "good-token" {
		return "", ports.ErrInvalidToken
	}
	return v.owner, nil
}

func newTestHandler(svc apiAssessmentService) http.Handler {
	return newAPIHandler(svc, stubVerifier{owner: "alice"}, "")
}

func TestAPIRequiresBearerToken(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&stubAssessmentService{})

	req := httptest.NewRequest(http.MethodGet, "/assessments", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest(http.MethodGet, "/assessments", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d, want %d", resp.Code, http.StatusUnauthorized)
	}
}

func TestAPICreatePassesVerifiedOwner(t *testing.T) {
	t.Parallel()

	svc := &stubAssessmentService{
		created: domainassessment.Assessment{ID: "a1", Subject: "Warehouse 4"},
	}
	handler := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/assessments", strings.NewReader(`{"subject":"Warehouse 4"}`))
	req.Header.Set("Authorization", "Bearer good-token")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body=%s", resp.Code, http.StatusCreated, resp.Body.String())
	}
	if !svc.createCalled {
		t.Fatal("service Create not called")
	}
	if svc.createInput.OwnerID != "alice" {
		t.Fatalf("owner = %q, want the verified token subject", svc.createInput.OwnerID)
	}
	if svc.createInput.Subject != "Warehouse 4" {
		t.Fatalf("subject = %q", svc.createInput.Subject)
	}

	var body assessmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID != "a1" {
		t.Fatalf("response id = %q", body.ID)
	}
}

func TestAPIMapsNotFound(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&stubAssessmentService{getErr: ports.ErrAssessmentNotFound})

	req := httptest.NewRequest(http.MethodGet, "/assessments/a1", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusNotFound)
	}
}

func TestAPICompleteReportsRemaining(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&stubAssessmentService{
		completeErr: &domainassessment.IncompleteError{Remaining: 4},
	})

	req := httptest.NewRequest(http.MethodPost, "/assessments/a1/complete", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusUnprocessableEntity)
	}

	var body apiErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Remaining != 4 {
		t.Fatalf("remaining = %d, want 4", body.Remaining)
	}
}

func TestAPIMapsValidationErrors(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&stubAssessmentService{createErr: domainassessment.ErrSubjectRequired})

	req := httptest.NewRequest(http.MethodPost, "/assessments", strings.NewReader(`{"subject":""}`))
	req.Header.Set("Authorization", "Bearer good-token")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusUnprocessableEntity)
	}
}
