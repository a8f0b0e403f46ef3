package identification

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/contracts/mocks"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/app/services/core/session"
	"arogyanetra-service/internal/app/services/shared/qrcode"
	"arogyanetra-service/internal/app/services/shared/redis"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const cardID = "AN-123456-7890"

type fixture struct {
	usecase   contracts.IdentificationUsecase
	sessions  contracts.SessionService
	upstream  *mocks.ArogyaNetraClient
	audit     *mocks.AuditPublisher
	sessionID string
}

func setup(t *testing.T) *fixture {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := redis.NewRedisRepository(client)

	logger := zap.NewNop()
	upstream := new(mocks.ArogyaNetraClient)
	audit := new(mocks.AuditPublisher)
	sessions := session.NewSessionService(repo, upstream, logger, "secret", 1)

	doctor := &models.UserProfile{ID: "d1", AccountType: constvars.AccountTypeDoctor}
	sess, _, err := sessions.Create(context.Background(), "tkn", doctor)
	require.NoError(t, err)

	cfg := &config.InternalConfig{
		Upstream:       config.AppUpstream{FaceRecognitionTimeoutInSeconds: 60},
		Identification: config.AppIdentify{QRInvalidResetInSeconds: 3},
	}
	return &fixture{
		usecase:   NewIdentificationUsecase(sessions, upstream, audit, cfg, logger),
		sessions:  sessions,
		upstream:  upstream,
		audit:     audit,
		sessionID: sess.SessionID,
	}
}

func statusCode(t *testing.T, err error) int {
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "got %v", err)
	return customErr.StatusCode
}

func detail(t *testing.T, err error, key string) interface{} {
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.Details[key]
}

func found() *models.PatientRecord {
	return &models.PatientRecord{UserProfile: models.UserProfile{
		ID:              "u7",
		FirstName:       "Meera",
		AccountType:     constvars.AccountTypeUser,
		ArogyaNetraCard: &models.ArogyaNetraCard{CardID: cardID},
	}}
}

func TestCardIDFromQR(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"raw card id", cardID, cardID},
		{"card json", `{"cardId":"AN-123456-7890","userId":"u7","timestamp":1}`, cardID},
		{"json without card", `{"userId":"u7"}`, ""},
		{"json with bad card", `{"cardId":"AN-12-34"}`, ""},
		{"free text", "hello doctor", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CardIDFromQR(tt.text))
		})
	}
}

func TestIdentify_UnknownMethod(t *testing.T) {
	f := setup(t)
	_, err := f.usecase.Identify(context.Background(), f.sessionID, "iris", &requests.IdentifyInput{})
	assert.Equal(t, constvars.StatusBadRequest, statusCode(t, err))
}

func TestIdentify_SearchStoresViewedPatient(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.upstream.On("GetUserByCardID", mock.Anything, "tkn", cardID).Return(found(), nil).Once()

	result, err := f.usecase.Identify(ctx, f.sessionID, constvars.IdentifyMethodSearch, &requests.IdentifyInput{Query: " an-123456-7890 "})
	require.NoError(t, err)
	assert.Equal(t, "u7", result.Patient.ID)
	assert.Equal(t, []string{constvars.AuditEventPatientIdentified}, f.audit.Types())
	assert.Equal(t, constvars.IdentifyMethodSearch, f.audit.Events[0].Method)

	current, err := f.usecase.Current(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, "Meera", current.Patient.FirstName)

	require.NoError(t, f.usecase.Clear(ctx, f.sessionID))
	_, err = f.usecase.Current(ctx, f.sessionID)
	assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
}

func TestIdentify_SearchRejectsNames(t *testing.T) {
	f := setup(t)
	_, err := f.usecase.Identify(context.Background(), f.sessionID, constvars.IdentifyMethodSearch, &requests.IdentifyInput{Query: "Meera"})
	assert.Equal(t, constvars.StatusUnprocessableEntity, statusCode(t, err))
	f.upstream.AssertNotCalled(t, "GetUserByCardID", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.audit.Types())
}

func TestIdentify_QRText(t *testing.T) {
	f := setup(t)
	payload := `{"cardId":"AN-123456-7890"}`
	f.upstream.On("VerifyCard", mock.Anything, "tkn", payload).Return(found(), nil).Once()

	result, err := f.usecase.Identify(context.Background(), f.sessionID, constvars.IdentifyMethodQRScan, &requests.IdentifyInput{QRText: payload})
	require.NoError(t, err)
	assert.Equal(t, constvars.IdentifyMethodQRScan, result.Method)
}

func TestIdentify_QRInvalidPayloadCarriesReset(t *testing.T) {
	f := setup(t)
	_, err := f.usecase.Identify(context.Background(), f.sessionID, constvars.IdentifyMethodQRScan, &requests.IdentifyInput{QRText: "https://example.com"})
	assert.Equal(t, constvars.StatusBadRequest, statusCode(t, err))
	assert.Equal(t, 3, detail(t, err, "reset_after_seconds"))
}

func TestQRScan_DecodesFrame(t *testing.T) {
	upstream := new(mocks.ArogyaNetraClient)
	png, err := qrcode.Encode(cardID, 256)
	require.NoError(t, err)
	upstream.On("VerifyCard", mock.Anything, "tkn", cardID).Return(found(), nil).Once()

	patient, err := NewQRScan(upstream, 0).Identify(context.Background(), "tkn", &requests.IdentifyInput{
		Frame: &requests.UploadedFile{FileName: "frame.png", ContentType: constvars.MIMEImagePNG, Content: png},
	})
	require.NoError(t, err)
	assert.Equal(t, "u7", patient.ID)
}

func TestQRScan_UnreadableFrame(t *testing.T) {
	_, err := NewQRScan(new(mocks.ArogyaNetraClient), 0).Identify(context.Background(), "tkn", &requests.IdentifyInput{
		Frame: &requests.UploadedFile{FileName: "frame.png", Content: []byte("not an image")},
	})
	assert.Equal(t, constvars.StatusBadRequest, statusCode(t, err))
	assert.Equal(t, defaultQRResetAfterInSec, detail(t, err, "reset_after_seconds"))
}

func TestFaceScan_RequiresImage(t *testing.T) {
	scan := NewFaceScan(new(mocks.ArogyaNetraClient), 0)

	_, err := scan.Identify(context.Background(), "tkn", &requests.IdentifyInput{})
	assert.Equal(t, constvars.StatusBadRequest, statusCode(t, err))

	_, err = scan.Identify(context.Background(), "tkn", &requests.IdentifyInput{
		Photo: &requests.UploadedFile{FileName: "a.pdf", ContentType: constvars.MIMEApplicationPDF, Content: []byte("%PDF")},
	})
	assert.Equal(t, constvars.StatusUnsupportedMediaType, statusCode(t, err))
}

func TestFaceScan_Timeout(t *testing.T) {
	upstream := new(mocks.ArogyaNetraClient)
	photo := &requests.UploadedFile{FileName: "face.jpg", ContentType: constvars.MIMEImageJPEG, Content: []byte{0xff, 0xd8}}
	upstream.On("RecognizeFace", mock.Anything, "tkn", photo).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(nil, exceptions.ErrUpstreamTimeout(nil, "/recognize")).Once()

	_, err := NewFaceScan(upstream, 20*time.Millisecond).Identify(context.Background(), "tkn", &requests.IdentifyInput{Photo: photo})
	assert.Equal(t, constvars.StatusGatewayTimeout, statusCode(t, err))

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.ErrClientFaceRecognitionTimeout, customErr.ClientMessage)
}

func TestFaceScan_PassesUpstreamErrors(t *testing.T) {
	upstream := new(mocks.ArogyaNetraClient)
	photo := &requests.UploadedFile{FileName: "face.jpg", ContentType: constvars.MIMEImageJPEG, Content: []byte{0xff, 0xd8}}
	upstream.On("RecognizeFace", mock.Anything, "tkn", photo).
		Return(nil, exceptions.ErrUpstreamBusinessFailure(nil, "/recognize", "no match")).Once()

	_, err := NewFaceScan(upstream, time.Second).Identify(context.Background(), "tkn", &requests.IdentifyInput{Photo: photo})
	assert.Equal(t, constvars.StatusUnprocessableEntity, statusCode(t, err))
}
