package cards

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/app/services/shared/cardrender"
	"arogyanetra-service/internal/app/services/shared/qrcode"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/responses"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	cardObjectPrefix = "cards"
	cardExportName   = "arogyanetra-card.png"
	frontTitle       = "ArogyaNetra Health Card"
	backTitle        = "Emergency Information"
	emptyValue       = "-"
	exportQRSize     = qrcode.MinSize
	issueCardPath    = "/auth/getArogyaNetraCardId"
)

type cardUsecase struct {
	SessionService contracts.SessionService
	Upstream       contracts.ArogyaNetraClient
	Locker         contracts.LockerService
	Storage        contracts.Storage
	AuditPublisher contracts.AuditPublisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

func NewCardUsecase(
	sessionService contracts.SessionService,
	upstream contracts.ArogyaNetraClient,
	locker contracts.LockerService,
	storage contracts.Storage,
	auditPublisher contracts.AuditPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CardUsecase {
	return &cardUsecase{
		SessionService: sessionService,
		Upstream:       upstream,
		Locker:         locker,
		Storage:        storage,
		AuditPublisher: auditPublisher,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

// GetOrCreate never asks upstream for a new card when the user already has one.
func (uc *cardUsecase) GetOrCreate(ctx context.Context, sessionID string) (*responses.Card, error) {
	user, err := uc.cardHolder(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.buildCard(user), nil
}

func (uc *cardUsecase) QRCode(ctx context.Context, sessionID string, size int) ([]byte, error) {
	user, err := uc.cardHolder(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	payload, err := uc.encodePayload(user)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(payload, size)
}

func (uc *cardUsecase) Export(ctx context.Context, sessionID string) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cardUsecase.Export called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	user, err := uc.cardHolder(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	payload, err := uc.encodePayload(user)
	if err != nil {
		return nil, err
	}
	qr, err := qrcode.Image(payload, exportQRSize)
	if err != nil {
		return nil, err
	}

	front := cardrender.RenderFront(frontContent(user, qr))
	back := cardrender.RenderBack(backContent(user))
	return cardrender.Export(front, back)
}

func (uc *cardUsecase) ExportLink(ctx context.Context, sessionID string) (*responses.CardExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	png, err := uc.Export(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	bucket := uc.InternalConfig.Minio.CardBucketName
	objectKey := utils.GenerateObjectKey(cardObjectPrefix, session.UserID(), cardExportName)
	err = uc.Storage.PutObject(ctx, bucket, objectKey, png, constvars.MIMEImagePNG)
	if err != nil {
		uc.Log.Error("cardUsecase.ExportLink error storing card export",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucket),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInMinutes
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucket, objectKey, time.Duration(expiry)*time.Minute)
	if err != nil {
		return nil, err
	}
	return &responses.CardExport{URL: url, ExpiresInMinutes: expiry}, nil
}

// cardHolder returns the session user with a card, issuing one when
// neither the session nor a fresh upstream read has it.
func (uc *cardUsecase) cardHolder(ctx context.Context, sessionID string) (*models.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.User == nil || !session.User.IsPatient() {
		return nil, exceptions.ErrCardOnlyForUsers(nil, session.AccountType())
	}
	if session.User.HasCard() {
		return session.User, nil
	}

	session, err = uc.SessionService.RefreshUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.User.HasCard() {
		return session.User, nil
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyCardIssueLockFormat, session.UserID())
	lockTimeout := time.Duration(uc.InternalConfig.App.CardIssueLockTimeoutInSeconds) * time.Second
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, lockTimeout)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrRequestInFlight(nil, lockKey)
	}
	defer uc.Locker.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)

	// The previous holder may have issued the card since the first read.
	session, err = uc.SessionService.RefreshUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.User.HasCard() {
		return session.User, nil
	}

	card, err := uc.Upstream.IssueCard(ctx, session.Token)
	if err != nil {
		uc.Log.Error("cardUsecase.cardHolder error calling upstream IssueCard",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID()),
			zap.Error(err),
		)
		return nil, err
	}

	session, err = uc.SessionService.RefreshUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	user := session.User
	if !user.HasCard() && card != nil && card.CardID != "" {
		patched := *user
		patched.ArogyaNetraCard = card
		user = &patched
		if err := uc.SessionService.Replace(ctx, session.WithUser(user)); err != nil {
			return nil, err
		}
	}
	if !user.HasCard() {
		return nil, exceptions.ErrUpstreamMalformedResponse(nil, issueCardPath)
	}

	uc.AuditPublisher.Publish(ctx, models.AuditEvent{
		Type:       constvars.AuditEventCardIssued,
		ActorID:    user.ID,
		SubjectID:  user.ID,
		RequestID:  requestID,
		OccurredAt: uc.now().UTC(),
		Attributes: map[string]string{"card_id": cardID(user)},
	})
	uc.Log.Info("cardUsecase.cardHolder card issued",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCardIDKey, cardID(user)),
	)
	return user, nil
}

func (uc *cardUsecase) buildCard(user *models.UserProfile) *responses.Card {
	card := user.ArogyaNetraCard
	return &responses.Card{
		CardID:    card.CardID,
		IssueDate: card.IssueDate,
		Status:    card.Status,
		Holder:    user.FullName(),
		QRPayload: uc.payload(user),
	}
}

func (uc *cardUsecase) payload(user *models.UserProfile) responses.QRPayload {
	return responses.QRPayload{
		CardID:    cardID(user),
		UserID:    user.ID,
		Name:      user.FullName(),
		IssueDate: user.ArogyaNetraCard.IssueDate,
		Timestamp: uc.now().UnixMilli(),
	}
}

func (uc *cardUsecase) encodePayload(user *models.UserProfile) (string, error) {
	data, err := json.Marshal(uc.payload(user))
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}
	return string(data), nil
}

func cardID(user *models.UserProfile) string {
	if user.ArogyaNetraCard == nil {
		return ""
	}
	return user.ArogyaNetraCard.CardID
}

func frontContent(user *models.UserProfile, qr image.Image) cardrender.Front {
	bloodGroup := ""
	if user.AdditionalDetails != nil {
		bloodGroup = user.AdditionalDetails.BloodGroup
	}
	return cardrender.Front{
		Title: frontTitle,
		Lines: []cardrender.Line{
			{Label: "Name", Value: orEmpty(user.FullName())},
			{Label: "Card ID", Value: orEmpty(cardID(user))},
			{Label: "Issued", Value: orEmpty(user.ArogyaNetraCard.IssueDate)},
			{Label: "Blood Group", Value: orEmpty(bloodGroup)},
		},
		QR: qr,
	}
}

func backContent(user *models.UserProfile) cardrender.Back {
	details := user.AdditionalDetails
	if details == nil {
		details = &models.AdditionalDetails{}
	}

	contact := details.EmergencyContact.Name
	if details.EmergencyContact.Phone != "" {
		contact = strings.TrimSpace(contact + " (" + details.EmergencyContact.Phone + ")")
	}
	address := joinNonEmpty(", ", details.Address.Street, details.Address.City, details.Address.State, details.Address.PinCode)

	return cardrender.Back{
		Title: backTitle,
		Lines: []cardrender.Line{
			{Label: "Emergency Contact", Value: orEmpty(contact)},
			{Label: "Address", Value: orEmpty(address)},
			{Label: "Conditions", Value: orEmpty(strings.Join(details.MedicalConditions, ", "))},
			{Label: "Allergies", Value: orEmpty(strings.Join(details.Allergies, ", "))},
		},
	}
}

func joinNonEmpty(sep string, values ...string) string {
	kept := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			kept = append(kept, value)
		}
	}
	return strings.Join(kept, sep)
}

func orEmpty(value string) string {
	if value == "" {
		return emptyValue
	}
	return value
}
