package identification

import (
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/app/services/shared/qrcode"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultFaceTimeout       = 60 * time.Second
	defaultQRResetAfterInSec = 3
)

// Identifier resolves a patient from one kind of professional input.
type Identifier interface {
	Method() string
	Identify(ctx context.Context, token string, input *requests.IdentifyInput) (*models.PatientRecord, error)
}

type faceScan struct {
	upstream contracts.ArogyaNetraClient
	timeout  time.Duration
}

func NewFaceScan(upstream contracts.ArogyaNetraClient, timeout time.Duration) Identifier {
	if timeout <= 0 {
		timeout = defaultFaceTimeout
	}
	return &faceScan{upstream: upstream, timeout: timeout}
}

func (f *faceScan) Method() string { return constvars.IdentifyMethodFaceScan }

func (f *faceScan) Identify(ctx context.Context, token string, input *requests.IdentifyInput) (*models.PatientRecord, error) {
	if input == nil || input.Photo == nil || len(input.Photo.Content) == 0 {
		return nil, exceptions.ErrFileRequired(nil, constvars.FormFieldPhoto)
	}
	if !utils.IsImage(input.Photo.ContentType) {
		return nil, exceptions.ErrFileTypeNotAllowed(nil, input.Photo.FileName, input.Photo.ContentType)
	}

	faceCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	patient, err := f.upstream.RecognizeFace(faceCtx, token, input.Photo)
	if err != nil {
		if errors.Is(faceCtx.Err(), context.DeadlineExceeded) {
			return nil, exceptions.ErrFaceRecognitionTimeout(faceCtx.Err())
		}
		return nil, err
	}
	return patient, nil
}

type qrScan struct {
	upstream          contracts.ArogyaNetraClient
	resetAfterSeconds int
}

func NewQRScan(upstream contracts.ArogyaNetraClient, resetAfterSeconds int) Identifier {
	if resetAfterSeconds <= 0 {
		resetAfterSeconds = defaultQRResetAfterInSec
	}
	return &qrScan{upstream: upstream, resetAfterSeconds: resetAfterSeconds}
}

func (q *qrScan) Method() string { return constvars.IdentifyMethodQRScan }

// Identify accepts decoded text, or a camera frame it decodes itself.
func (q *qrScan) Identify(ctx context.Context, token string, input *requests.IdentifyInput) (*models.PatientRecord, error) {
	if input == nil {
		return nil, exceptions.ErrInvalidQRPayload(nil, q.resetAfterSeconds)
	}

	text := strings.TrimSpace(input.QRText)
	if text == "" && input.Frame != nil {
		decoded, err := qrcode.Decode(input.Frame.Content)
		if err != nil {
			return nil, exceptions.ErrInvalidQRPayload(errors.New(err.Error()), q.resetAfterSeconds)
		}
		text = strings.TrimSpace(decoded)
	}

	if CardIDFromQR(text) == "" {
		return nil, exceptions.ErrInvalidQRPayload(nil, q.resetAfterSeconds)
	}
	return q.upstream.VerifyCard(ctx, token, text)
}

// CardIDFromQR returns the card id carried by a scanned payload, or "" when
// the payload is neither card JSON nor a bare card id.
func CardIDFromQR(text string) string {
	if utils.IsCardID(text) {
		return text
	}
	if !gjson.Valid(text) {
		return ""
	}
	cardID := gjson.Get(text, "cardId").String()
	if !utils.IsCardID(cardID) {
		return ""
	}
	return cardID
}

type cardSearch struct {
	upstream contracts.ArogyaNetraClient
}

func NewCardSearch(upstream contracts.ArogyaNetraClient) Identifier {
	return &cardSearch{upstream: upstream}
}

func (c *cardSearch) Method() string { return constvars.IdentifyMethodSearch }

func (c *cardSearch) Identify(ctx context.Context, token string, input *requests.IdentifyInput) (*models.PatientRecord, error) {
	query := ""
	if input != nil {
		query = strings.ToUpper(strings.TrimSpace(input.Query))
	}
	if !utils.IsCardID(query) {
		return nil, exceptions.ErrSearchByCardID(nil, query)
	}
	return c.upstream.GetUserByCardID(ctx, token, query)
}
