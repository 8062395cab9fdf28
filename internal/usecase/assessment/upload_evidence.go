package assessment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/disintegration/imaging"

	"sitecheck/internal/bootstrap/logging"
	domainassessment "sitecheck/internal/domain/assessment"
	"sitecheck/internal/errs"
)

// Evidence photos are bounded to this edge length before storage.
const maxEvidenceEdge = 1600

var evidenceMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// UploadEvidence normalizes a photo, stores it under the owner's key
// space and appends the returned URL to the question's image list. The
// reference row is only written after the object store confirmed the
// upload, so no URL ever points at a missing object.
func (s *Service) UploadEvidence(ctx context.Context, input UploadEvidenceInput) (string, error) {
	if err := s.checkCall(ctx); err != nil {
		return "", err
	}
	if s.storage == nil {
		return "", errors.New("object storage is required")
	}

	owner, err := requireOwner(input.OwnerID)
	if err != nil {
		return "", err
	}

	if len(input.Data) == 0 {
		return "", domainassessment.ErrEmptyEvidence
	}

	question, err := s.repo.GetQuestion(ctx, owner, input.AssessmentID, input.QuestionID)
	if err != nil {
		return "", err
	}

	normalized, contentType, err := normalizeEvidenceImage(input.Data)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s/%s/%s.jpg", owner, input.AssessmentID, question.ID, newID())
	url, err := s.storage.Put(ctx, key, normalized, contentType)
	if err != nil {
		return "", errs.Wrap(err, "store evidence object")
	}

	if err := s.repo.AddQuestionImage(ctx, question.ID, url, nowUTCString()); err != nil {
		return "", err
	}

	logging.Info(ctx, "evidence uploaded",
		slog.String("question_id", question.ID),
		slog.String("object_key", key),
	)
	return url, nil
}

// normalizeEvidenceImage re-encodes the payload as a bounded JPEG. Only
// jpeg and png payloads are accepted; anything else is rejected by
// content sniffing, not by the client-supplied name.
func normalizeEvidenceImage(data []byte) ([]byte, string, error) {
	mimeType := http.DetectContentType(data)
	if !evidenceMimeTypes[mimeType] {
		return nil, "", fmt.Errorf("%w: sniffed %s", domainassessment.ErrInvalidEvidence, mimeType)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domainassessment.ErrInvalidEvidence, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxEvidenceEdge || bounds.Dy() > maxEvidenceEdge {
		img = imaging.Fit(img, maxEvidenceEdge, maxEvidenceEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, "", errs.Wrap(err, "encode evidence image")
	}
	return buf.Bytes(), "image/jpeg", nil
}
