package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	domainassessment "sitecheck/internal/domain/assessment"
	"sitecheck/internal/ports"
	assessmentuc "sitecheck/internal/usecase/assessment"
)

const maxEvidenceUploadBytes = 10 << 20

type apiAssessmentService interface {
	Create(ctx context.Context, input assessmentuc.CreateInput) (domainassessment.Assessment, error)
	Get(ctx context.Context, ownerID string, assessmentID string) (domainassessment.Assessment, error)
	List(ctx context.Context, ownerID string) ([]domainassessment.Assessment, error)
	UpdateAnswer(ctx context.Context, input assessmentuc.UpdateAnswerInput) (domainassessment.QuestionAnswer, error)
	Complete(ctx context.Context, ownerID string, assessmentID string) error
	UploadEvidence(ctx context.Context, input assessmentuc.UploadEvidenceInput) (string, error)
	Result(ctx context.Context, ownerID string, assessmentID string) (domainassessment.Result, error)
}

type apiHandler struct {
	svc      apiAssessmentService
	verifier ports.TokenVerifier
}

type ctxOwnerKey struct{}

func newAPIHandler(svc apiAssessmentService, verifier ports.TokenVerifier, evidenceDir string) http.Handler {
	h := &apiHandler{svc: svc, verifier: verifier}

	r := chi.NewRouter()

	if evidenceDir != "" {
		r.Handle("/evidence/*", http.StripPrefix("/evidence/", http.FileServer(http.Dir(evidenceDir))))
	}

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Route("/assessments", func(r chi.Router) {
			r.Post("/", h.createAssessment)
			r.Get("/", h.listAssessments)
			r.Get("/{assessmentID}", h.getAssessment)
			r.Get("/{assessmentID}/result", h.getResult)
			r.Post("/{assessmentID}/complete", h.completeAssessment)
			r.Put("/{assessmentID}/questions/{questionID}", h.updateAnswer)
			r.Post("/{assessmentID}/questions/{questionID}/images", h.uploadEvidence)
		})
	})

	return r
}

func (h *apiHandler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		const prefix = "Bearer "
		if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
			writeAPIError(w, http.StatusUnauthorized, "bearer token is required")
			return
		}

		owner, err := h.verifier.Verify(r.Context(), header[len(prefix):])
		if err != nil {
			writeAPIError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxOwnerKey{}, owner)))
	})
}

func ownerFromRequest(r *http.Request) string {
	owner, _ := r.Context().Value(ctxOwnerKey{}).(string)
	return owner
}

type createAssessmentRequest struct {
	Subject string `json:"subject"`
}

type updateAnswerRequest struct {
	Answer  string   `json:"answer"`
	Comment *string  `json:"comment"`
	Images  []string `json:"images"`
}

type questionResponse struct {
	ID      string   `json:"id"`
	Ordinal int      `json:"ordinal"`
	Prompt  string   `json:"prompt"`
	Answer  string   `json:"answer,omitempty"`
	Comment *string  `json:"comment,omitempty"`
	Images  []string `json:"images,omitempty"`
}

type assessmentResponse struct {
	ID        string             `json:"id"`
	Subject   string             `json:"subject"`
	Date      string             `json:"date"`
	Completed bool               `json:"completed"`
	CreatedAt string             `json:"created_at"`
	Questions []questionResponse `json:"questions"`
}

type resultResponse struct {
	TotalQuestions      int `json:"total_questions"`
	ApplicableQuestions int `json:"applicable_questions"`
	YesAnswers          int `json:"yes_answers"`
	Percentage          int `json:"percentage"`
}

type evidenceResponse struct {
	URL string `json:"url"`
}

type apiErrorResponse struct {
	Error     string `json:"error"`
	Remaining int    `json:"remaining,omitempty"`
}

func (h *apiHandler) createAssessment(w http.ResponseWriter, r *http.Request) {
	var req createAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), assessmentuc.CreateInput{
		OwnerID: ownerFromRequest(r),
		Subject: req.Subject,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeAPIJSON(w, http.StatusCreated, mapAssessmentResponse(created))
}

func (h *apiHandler) listAssessments(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), ownerFromRequest(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	out := make([]assessmentResponse, 0, len(items))
	for _, item := range items {
		out = append(out, mapAssessmentResponse(item))
	}
	writeAPIJSON(w, http.StatusOK, out)
}

func (h *apiHandler) getAssessment(w http.ResponseWriter, r *http.Request) {
	loaded, err := h.svc.Get(r.Context(), ownerFromRequest(r), chi.URLParam(r, "assessmentID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeAPIJSON(w, http.StatusOK, mapAssessmentResponse(loaded))
}

func (h *apiHandler) getResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Result(r.Context(), ownerFromRequest(r), chi.URLParam(r, "assessmentID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeAPIJSON(w, http.StatusOK, resultResponse{
		TotalQuestions:      result.TotalQuestions,
		ApplicableQuestions: result.ApplicableQuestions,
		YesAnswers:          result.YesAnswers,
		Percentage:          result.Percentage,
	})
}

func (h *apiHandler) completeAssessment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Complete(r.Context(), ownerFromRequest(r), chi.URLParam(r, "assessmentID")); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *apiHandler) updateAnswer(w http.ResponseWriter, r *http.Request) {
	var req updateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := domainassessment.ParseAnswer(req.Answer)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	updated, err := h.svc.UpdateAnswer(r.Context(), assessmentuc.UpdateAnswerInput{
		OwnerID:      ownerFromRequest(r),
		AssessmentID: chi.URLParam(r, "assessmentID"),
		QuestionID:   chi.URLParam(r, "questionID"),
		Answer:       answer,
		Comment:      req.Comment,
		Images:       req.Images,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeAPIJSON(w, http.StatusOK, mapQuestionResponse(updated))
}

func (h *apiHandler) uploadEvidence(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEvidenceUploadBytes))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "failed to read payload")
		return
	}

	url, err := h.svc.UploadEvidence(r.Context(), assessmentuc.UploadEvidenceInput{
		OwnerID:      ownerFromRequest(r),
		AssessmentID: chi.URLParam(r, "assessmentID"),
		QuestionID:   chi.URLParam(r, "questionID"),
		Data:         data,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeAPIJSON(w, http.StatusCreated, evidenceResponse{URL: url})
}

func (h *apiHandler) writeServiceError(w http.ResponseWriter, err error) {
	var incomplete *domainassessment.IncompleteError
	switch {
	case errors.Is(err, domainassessment.ErrNotAuthenticated):
		writeAPIError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, ports.ErrAssessmentNotFound), errors.Is(err, ports.ErrQuestionNotFound):
		writeAPIError(w, http.StatusNotFound, "not found")
	case errors.As(err, &incomplete):
		writeAPIJSON(w, http.StatusUnprocessableEntity, apiErrorResponse{
			Error:     incomplete.Error(),
			Remaining: incomplete.Remaining,
		})
	case errors.Is(err, domainassessment.ErrSubjectRequired),
		errors.Is(err, domainassessment.ErrInvalidAnswer),
		errors.Is(err, domainassessment.ErrEmptyEvidence),
		errors.Is(err, domainassessment.ErrInvalidEvidence):
		writeAPIError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeAPIError(w, http.StatusBadGateway, "storage failure, retry later")
	}
}

func mapAssessmentResponse(a domainassessment.Assessment) assessmentResponse {
	questions := make([]questionResponse, 0, len(a.Questions))
	for _, q := range a.Questions {
		questions = append(questions, mapQuestionResponse(q))
	}
	return assessmentResponse{
		ID:        a.ID,
		Subject:   a.Subject,
		Date:      a.Date,
		Completed: a.Completed,
		CreatedAt: a.CreatedAt,
		Questions: questions,
	}
}

func mapQuestionResponse(q domainassessment.QuestionAnswer) questionResponse {
	return questionResponse{
		ID:      q.ID,
		Ordinal: q.Ordinal,
		Prompt:  q.Prompt,
		Answer:  string(q.Answer),
		Comment: q.Comment,
		Images:  q.Images,
	}
}

func writeAPIJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeAPIError(w http.ResponseWriter, status int, msg string) {
	writeAPIJSON(w, status, apiErrorResponse{Error: msg})
}
