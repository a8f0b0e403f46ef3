package profile

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"arogyanetra-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type profileUsecase struct {
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	Upstream        contracts.ArogyaNetraClient
	AuditPublisher  contracts.AuditPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewProfileUsecase(
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	upstream contracts.ArogyaNetraClient,
	auditPublisher contracts.AuditPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	return &profileUsecase{
		RedisRepository: redisRepository,
		SessionService:  sessionService,
		Upstream:        upstream,
		AuditPublisher:  auditPublisher,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func wizardKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeyProfileWizardFormat, sessionID)
}

func (uc *profileUsecase) wizardTTL() time.Duration {
	return time.Duration(uc.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
}

// Start opens the wizard in mode. A wizard already in progress for the
// session is resumed at its current step.
func (uc *profileUsecase) Start(ctx context.Context, sessionID, mode string) (*responses.ProfileWizard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.Start called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	if mode != models.WizardModeModal && mode != models.WizardModePage {
		return nil, exceptions.ErrURLParamValidation(nil, "mode")
	}

	wizard, err := uc.loadWizard(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if wizard == nil {
		session, err := uc.SessionService.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		wizard = &models.ProfileWizard{
			Step:      models.WizardFirstStep,
			Form:      formFromUser(session.User),
			StartedAt: time.Now(),
		}
	}
	wizard.Mode = mode

	if err := uc.saveWizard(ctx, sessionID, wizard); err != nil {
		return nil, err
	}
	return buildWizardResponse(wizard), nil
}

func (uc *profileUsecase) Current(ctx context.Context, sessionID string) (*responses.ProfileWizard, error) {
	wizard, err := uc.requireWizard(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildWizardResponse(wizard), nil
}

func (uc *profileUsecase) SaveStep(ctx context.Context, sessionID string, step int, request *requests.SaveProfileStep) (*responses.ProfileWizard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.SaveStep called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingStepKey, step),
	)

	wizard, err := uc.requireWizard(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if step != wizard.Step {
		return nil, exceptions.ErrWizardStepMismatch(nil, wizard.Step, step)
	}

	form := wizard.Form
	applyStep(&form, step, request)
	if err := validateStep(&form, step); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	wizard.Form = form
	if wizard.Step < models.WizardLastStep {
		wizard.Step++
	}
	if err := uc.saveWizard(ctx, sessionID, wizard); err != nil {
		return nil, err
	}
	return buildWizardResponse(wizard), nil
}

func (uc *profileUsecase) Back(ctx context.Context, sessionID string) (*responses.ProfileWizard, error) {
	wizard, err := uc.requireWizard(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if wizard.Step > models.WizardFirstStep {
		wizard.Step--
	}
	if err := uc.saveWizard(ctx, sessionID, wizard); err != nil {
		return nil, err
	}
	return buildWizardResponse(wizard), nil
}

// Submit sends the whole form upstream and then re-reads the user. The
// session never merges the form locally.
func (uc *profileUsecase) Submit(ctx context.Context, sessionID string) (*responses.SubmitProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	wizard, err := uc.requireWizard(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if wizard.Step != models.WizardLastStep {
		return nil, exceptions.ErrWizardNotOnLastStep(nil, wizard.Step)
	}
	if err := validateStep(&wizard.Form, models.WizardLastStep); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	err = uc.Upstream.UpdateMedicalProfile(ctx, session.Token, toUpstream(wizard.Form))
	if err != nil {
		uc.Log.Error("profileUsecase.Submit error calling upstream UpdateMedicalProfile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	refreshed, err := uc.SessionService.RefreshUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Delete(ctx, wizardKey(sessionID)); err != nil {
		uc.Log.Warn("profileUsecase.Submit error deleting wizard state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.AuditPublisher.Publish(ctx, models.AuditEvent{
		Type:       constvars.AuditEventProfileCompleted,
		ActorID:    refreshed.UserID(),
		SubjectID:  refreshed.UserID(),
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Attributes: map[string]string{"mode": wizard.Mode},
	})

	response := &responses.SubmitProfile{User: refreshed.User}
	if wizard.Mode == models.WizardModePage {
		response.NextRoute = constvars.RouteUserDashboard
	}

	uc.Log.Info("profileUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, refreshed.UserID()),
	)
	return response, nil
}

func (uc *profileUsecase) loadWizard(ctx context.Context, sessionID string) (*models.ProfileWizard, error) {
	wizard := new(models.ProfileWizard)
	found, err := uc.RedisRepository.GetInto(ctx, wizardKey(sessionID), wizard)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return wizard, nil
}

func (uc *profileUsecase) requireWizard(ctx context.Context, sessionID string) (*models.ProfileWizard, error) {
	wizard, err := uc.loadWizard(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if wizard == nil {
		return nil, exceptions.ErrWizardNotStarted(nil)
	}
	return wizard, nil
}

func (uc *profileUsecase) saveWizard(ctx context.Context, sessionID string, wizard *models.ProfileWizard) error {
	return uc.RedisRepository.Set(ctx, wizardKey(sessionID), wizard, uc.wizardTTL())
}

func buildWizardResponse(wizard *models.ProfileWizard) *responses.ProfileWizard {
	return &responses.ProfileWizard{
		Step:       wizard.Step,
		TotalSteps: models.WizardLastStep,
		Mode:       wizard.Mode,
		Form:       wizard.Form,
		CanGoBack:  wizard.Step > models.WizardFirstStep,
		CanSubmit:  wizard.Step == models.WizardLastStep,
	}
}
