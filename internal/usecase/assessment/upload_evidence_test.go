package assessment

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	domainassessment "sitecheck/internal/domain/assessment"
	sqliterepo "sitecheck/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "sitecheck/internal/infrastructure/persistence/sqlite/uow"
)

func testImageBytes(t *testing.T, width int, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestUploadEvidenceAppendsURL(t *testing.T) {
	svc, storage := setupService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "alice", "Warehouse 4")
	q1 := created.Questions[0]

	first, err := svc.UploadEvidence(ctx, UploadEvidenceInput{
		OwnerID:      "alice",
		AssessmentID: created.ID,
		QuestionID:   q1.ID,
		Data:         testImageBytes(t, 32, 24),
	})
	if err != nil {
		t.Fatalf("UploadEvidence() error = %v", err)
	}

	second, err := svc.UploadEvidence(ctx, UploadEvidenceInput{
		OwnerID:      "alice",
		AssessmentID: created.ID,
		QuestionID:   q1.ID,
		Data:         testImageBytes(t, 16, 16),
	})
	if err != nil {
		t.Fatalf("second UploadEvidence() error = %v", err)
	}

	loaded, err := svc.Get(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	images := loaded.Questions[0].Images
	if len(images) != 2 || images[0] != first || images[1] != second {
		t.Fatalf("images = %v, want [%s %s] in append order", images, first, second)
	}

	if len(storage.keys) != 2 {
		t.Fatalf("storage received %d objects, want 2", len(storage.keys))
	}
	wantPrefix := "alice/" + created.ID + "/" + q1.ID + "/"
	for _, key := range storage.keys {
		if !strings.HasPrefix(key, wantPrefix) {
			t.Fatalf("object key %q misses owner/assessment/question prefix %q", key, wantPrefix)
		}
		if !strings.HasSuffix(key, ".jpg") {
			t.Fatalf("object key %q is not a jpg", key)
		}
	}
}

func TestUploadEvidenceRejectsNonImage(t *testing.T) {
	svc, storage := setupService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "alice", "Warehouse 4")

	_, err := svc.UploadEvidence(ctx, UploadEvidenceInput{
		OwnerID:      "alice",
		AssessmentID: created.ID,
		QuestionID:   created.Questions[0].ID,
		Data:         []byte("definitely not a photo"),
	})
	if !errors.Is(err, domainassessment.ErrInvalidEvidence) {
		t.Fatalf("UploadEvidence() error = %v, want ErrInvalidEvidence", err)
	}
	if len(storage.keys) != 0 {
		t.Fatalf("rejected payload still reached storage: %v", storage.keys)
	}
}

func TestUploadEvidenceStorageFailureWritesNoRow(t *testing.T) {
	svc, _, db := setupServiceWithDB(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "alice", "Warehouse 4")

	broken := NewService(
		sqliterepo.NewAssessmentRepository(db),
		sqliteuow.NewUnitOfWork(db),
		failingStorage{},
		testTemplate(t),
	)

	if _, err := broken.UploadEvidence(ctx, UploadEvidenceInput{
		OwnerID:      "alice",
		AssessmentID: created.ID,
		QuestionID:   created.Questions[0].ID,
		Data:         testImageBytes(t, 8, 8),
	}); err == nil {
		t.Fatal("UploadEvidence() must surface storage failure")
	}

	loaded, err := svc.Get(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(loaded.Questions[0].Images) != 0 {
		t.Fatalf("dangling image reference recorded: %v", loaded.Questions[0].Images)
	}
}

func TestNormalizeEvidenceBoundsLargeImages(t *testing.T) {
	data := testImageBytes(t, 2000, 500)

	normalized, contentType, err := normalizeEvidenceImage(data)
	if err != nil {
		t.Fatalf("normalizeEvidenceImage() error = %v", err)
	}
	if contentType != "image/jpeg" {
		t.Fatalf("content type = %q, want image/jpeg", contentType)
	}

	decoded, _, err := image.Decode(bytes.NewReader(normalized))
	if err != nil {
		t.Fatalf("decode normalized image: %v", err)
	}
	if decoded.Bounds().Dx() > maxEvidenceEdge || decoded.Bounds().Dy() > maxEvidenceEdge {
		t.Fatalf("normalized image still %v", decoded.Bounds())
	}
}
