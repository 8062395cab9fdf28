package assessment

import (
	"context"
	"errors"
	"testing"

	domainassessment "sitecheck/internal/domain/assessment"
)

func answerQuestion(t *testing.T, svc *Service, owner string, assessmentID string, questionID string, answer domainassessment.Answer) {
	t.Helper()

	if _, err := svc.UpdateAnswer(context.Background(), UpdateAnswerInput{
		OwnerID:      owner,
		AssessmentID: assessmentID,
		QuestionID:   questionID,
		Answer:       answer,
	}); err != nil {
		t.Fatalf("UpdateAnswer() error = %v", err)
	}
}

func TestCompleteRejectsUnanswered(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "alice", "Warehouse 4")
	answerQuestion(t, svc, "alice", created.ID, created.Questions[0].ID, domainassessment.AnswerYes)
	answerQuestion(t, svc, "alice", created.ID, created.Questions[2].ID, domainassessment.AnswerNo)

	err := svc.Complete(ctx, "alice", created.ID)
	var incomplete *domainassessment.IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Complete() error = %v, want IncompleteError", err)
	}
	if incomplete.Remaining != 1 {
		t.Fatalf("remaining = %d, want 1", incomplete.Remaining)
	}

	loaded, err := svc.Get(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if loaded.Completed {
		t.Fatal("assessment must stay incomplete after rejection")
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "alice", "Warehouse 4")
	for _, q := range created.Questions {
		answerQuestion(t, svc, "alice", created.ID, q.ID, domainassessment.AnswerYes)
	}

	if err := svc.Complete(ctx, "alice", created.ID); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if err := svc.Complete(ctx, "alice", created.ID); err != nil {
		t.Fatalf("second Complete() error = %v, want no-op success", err)
	}

	loaded, err := svc.Get(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !loaded.Completed {
		t.Fatal("assessment not marked completed")
	}
}

func TestInspectionRoundTrip(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "alice", "Warehouse 4")
	answerQuestion(t, svc, "alice", created.ID, created.Questions[0].ID, domainassessment.AnswerYes)
	answerQuestion(t, svc, "alice", created.ID, created.Questions[1].ID, domainassessment.AnswerNo)
	answerQuestion(t, svc, "alice", created.ID, created.Questions[2].ID, domainassessment.AnswerNotApplicable)

	result, err := svc.Result(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}
	want := domainassessment.Result{TotalQuestions: 3, ApplicableQuestions: 2, YesAnswers: 1, Percentage: 50}
	if result != want {
		t.Fatalf("Result() = %+v, want %+v", result, want)
	}

	if err := svc.Complete(ctx, "alice", created.ID); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if err := svc.Complete(ctx, "alice", created.ID); err != nil {
		t.Fatalf("repeat Complete() error = %v", err)
	}
}
