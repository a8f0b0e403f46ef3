package identification

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"arogyanetra-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.uber.org/zap"
)

type identificationUsecase struct {
	SessionService contracts.SessionService
	AuditPublisher contracts.AuditPublisher
	Log            *zap.Logger
	identifiers    map[string]Identifier
}

// NewIdentificationUsecase registers the face, QR and card-search
// identifiers.
func NewIdentificationUsecase(
	sessionService contracts.SessionService,
	upstream contracts.ArogyaNetraClient,
	auditPublisher contracts.AuditPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.IdentificationUsecase {
	faceTimeout := time.Duration(internalConfig.Upstream.FaceRecognitionTimeoutInSeconds) * time.Second
	return NewDispatcher(sessionService, auditPublisher, logger,
		NewFaceScan(upstream, faceTimeout),
		NewQRScan(upstream, internalConfig.Identification.QRInvalidResetInSeconds),
		NewCardSearch(upstream),
	)
}

func NewDispatcher(sessionService contracts.SessionService, auditPublisher contracts.AuditPublisher, logger *zap.Logger, identifiers ...Identifier) contracts.IdentificationUsecase {
	registry := make(map[string]Identifier, len(identifiers))
	for _, identifier := range identifiers {
		registry[identifier.Method()] = identifier
	}
	return &identificationUsecase{
		SessionService: sessionService,
		AuditPublisher: auditPublisher,
		Log:            logger,
		identifiers:    registry,
	}
}

func (uc *identificationUsecase) Identify(ctx context.Context, sessionID, method string, input *requests.IdentifyInput) (*responses.IdentifiedPatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("identificationUsecase.Identify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingIdentifyMethodKey, method),
	)

	identifier, ok := uc.identifiers[method]
	if !ok {
		return nil, exceptions.ErrUnknownIdentifyMethod(nil, method)
	}

	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	patient, err := identifier.Identify(ctx, session.Token, input)
	if err != nil {
		uc.Log.Error("identificationUsecase.Identify identifier failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingIdentifyMethodKey, method),
			zap.Error(err),
		)
		return nil, err
	}

	// Re-read so a concurrent write to the session is not overwritten.
	session, err = uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := uc.SessionService.Replace(ctx, session.WithViewedPatient(patient)); err != nil {
		return nil, err
	}

	uc.AuditPublisher.Publish(ctx, models.AuditEvent{
		Type:       constvars.AuditEventPatientIdentified,
		ActorID:    session.UserID(),
		SubjectID:  patient.ID,
		Method:     method,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
	})

	uc.Log.Info("identificationUsecase.Identify succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentifyMethodKey, method),
		zap.String(constvars.LoggingCardIDKey, patientCardID(patient)),
	)
	return &responses.IdentifiedPatient{Method: method, Patient: patient}, nil
}

func (uc *identificationUsecase) Current(ctx context.Context, sessionID string) (*responses.IdentifiedPatient, error) {
	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ViewedPatient == nil {
		return nil, exceptions.ErrNoPatientSelected(nil)
	}
	return &responses.IdentifiedPatient{Patient: session.ViewedPatient}, nil
}

func (uc *identificationUsecase) Clear(ctx context.Context, sessionID string) error {
	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.ViewedPatient == nil {
		return nil
	}
	return uc.SessionService.Replace(ctx, session.WithViewedPatient(nil))
}

func patientCardID(patient *models.PatientRecord) string {
	if patient == nil || patient.ArogyaNetraCard == nil {
		return ""
	}
	return patient.ArogyaNetraCard.CardID
}
