package registration

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/app/services/shared/ratelimiter"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	otpSendLimiterGroup   = "OTP_SEND"
	otpSendWindowSeconds  = 3600
	otpSendMaxPerWindow   = 5
	otpSendLimitDetailKey = "retry_after"
)

type registrationUsecase struct {
	RedisRepository contracts.RedisRepository
	Upstream        contracts.ArogyaNetraClient
	ResourceLimiter *ratelimiter.ResourceLimiter
	AuditPublisher  contracts.AuditPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

func NewRegistrationUsecase(
	redisRepository contracts.RedisRepository,
	upstream contracts.ArogyaNetraClient,
	resourceLimiter *ratelimiter.ResourceLimiter,
	auditPublisher contracts.AuditPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RegistrationUsecase {
	return &registrationUsecase{
		RedisRepository: redisRepository,
		Upstream:        upstream,
		ResourceLimiter: resourceLimiter,
		AuditPublisher:  auditPublisher,
		InternalConfig:  internalConfig,
		Log:             logger,
		now:             time.Now,
	}
}

func draftKey(draftID string) string {
	return fmt.Sprintf(constvars.RedisKeySignupDraftFormat, draftID)
}

func challengeKey(draftID string) string {
	return fmt.Sprintf(constvars.RedisKeySignupOTPFormat, draftID)
}

func (uc *registrationUsecase) draftTTL() time.Duration {
	return time.Duration(uc.InternalConfig.OTP.DraftExpiredTimeInHours) * time.Hour
}

func (uc *registrationUsecase) SubmitIdentity(ctx context.Context, request *requests.RegisterIdentity) (*responses.SignupDraft, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrationUsecase.SubmitIdentity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := uc.now()
	draft := &models.SignupDraft{
		DraftID:     uuid.NewString(),
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		MobileNo:    request.MobileNo,
		Email:       request.Email,
		ContactType: request.ContactType,
		UserType:    request.UserType,
		State:       models.SignupStateCollectingIdentity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	challenge, err := uc.sendOTP(ctx, draft)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			customErr.WithDetail("draft_id", draft.DraftID)
		}
		return nil, err
	}

	uc.Log.Info("registrationUsecase.SubmitIdentity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draft.DraftID),
	)
	return uc.buildDraftResponse(draft, challenge), nil
}

func (uc *registrationUsecase) Status(ctx context.Context, draftID string) (*responses.SignupDraft, error) {
	draft, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	challenge, err := uc.loadChallenge(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return uc.buildDraftResponse(draft, challenge), nil
}

func (uc *registrationUsecase) ResendOTP(ctx context.Context, draftID string) (*responses.SignupDraft, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrationUsecase.ResendOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
	)

	draft, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.State == models.SignupStateOtpVerified {
		return nil, exceptions.ErrDraftInvalidState(nil, draft.State, models.SignupStateAwaitingOtp)
	}

	challenge, err := uc.loadChallenge(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if challenge != nil {
		countdown := CountdownUntil(uc.now(), challenge.ResendAvailableAt)
		if !countdown.CanResend() {
			return nil, exceptions.ErrOTPCooldown(nil, countdown.Remaining())
		}
	}

	challenge, err = uc.sendOTP(ctx, draft)
	if err != nil {
		return nil, err
	}
	return uc.buildDraftResponse(draft, challenge), nil
}

func (uc *registrationUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.SignupDraft, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrationUsecase.VerifyOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, request.DraftID),
	)

	draft, err := uc.loadDraft(ctx, request.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.State != models.SignupStateAwaitingOtp {
		return nil, exceptions.ErrDraftInvalidState(nil, draft.State, models.SignupStateAwaitingOtp)
	}

	challenge, err := uc.loadChallenge(ctx, request.DraftID)
	if err != nil {
		return nil, err
	}
	if challenge == nil || challenge.IsExpired(uc.now()) {
		return nil, exceptions.ErrOTPExpired(nil)
	}

	maxAttempts := uc.InternalConfig.OTP.MaxAttempts
	if challenge.Attempts >= maxAttempts {
		return nil, exceptions.ErrOTPMaxAttempts(nil)
	}

	if !utils.CheckSecretHash(request.OTP, challenge.CodeHash) {
		challenge.Attempts++
		if err := uc.RedisRepository.Set(ctx, challengeKey(draft.DraftID), challenge, uc.draftTTL()); err != nil {
			return nil, err
		}
		uc.Log.Info("registrationUsecase.VerifyOTP wrong code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draft.DraftID),
		)
		if challenge.Attempts >= maxAttempts {
			return nil, exceptions.ErrOTPMaxAttempts(nil)
		}
		return nil, exceptions.ErrOTPInvalid(nil, maxAttempts-challenge.Attempts)
	}

	draft.State = models.SignupStateOtpVerified
	draft.UpdatedAt = uc.now()
	if err := uc.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	if err := uc.RedisRepository.Delete(ctx, challengeKey(draft.DraftID)); err != nil {
		return nil, err
	}

	uc.Log.Info("registrationUsecase.VerifyOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draft.DraftID),
	)
	response := uc.buildDraftResponse(draft, nil)
	response.NextRoute = constvars.RouteSignupNext
	return response, nil
}

func (uc *registrationUsecase) CompleteSignup(ctx context.Context, request *requests.CompleteSignup) (*responses.CompleteSignup, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrationUsecase.CompleteSignup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, request.DraftID),
	)

	draft, err := uc.loadDraft(ctx, request.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.State != models.SignupStateOtpVerified {
		return nil, exceptions.ErrDraftInvalidState(nil, draft.State, models.SignupStateOtpVerified)
	}

	if err := uc.validateSignupFiles(request); err != nil {
		return nil, err
	}

	strength := utils.PasswordStrength(request.Password)
	if strength < utils.MinimumPasswordStrength {
		return nil, exceptions.ErrPasswordTooWeak(nil, strength, utils.MinimumPasswordStrength)
	}
	if request.Password != request.ConfirmPassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	user, err := uc.Upstream.Signup(ctx, requests.UpstreamSignup{
		FirstName:   draft.FirstName,
		LastName:    draft.LastName,
		MobileNo:    draft.MobileNo,
		Email:       draft.Email,
		ContactType: draft.ContactType,
		UserType:    draft.UserType,
		Password:    request.Password,
		IDDocument:  request.IDDocument,
		FaceImage:   request.FaceImage,
	})
	if err != nil {
		uc.Log.Error("registrationUsecase.CompleteSignup error calling upstream Signup, draft kept",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draft.DraftID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.RedisRepository.Delete(ctx, draftKey(draft.DraftID), challengeKey(draft.DraftID)); err != nil {
		uc.Log.Warn("registrationUsecase.CompleteSignup error deleting draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	userID := ""
	if user != nil {
		userID = user.ID
	}
	uc.AuditPublisher.Publish(ctx, models.AuditEvent{
		Type:       constvars.AuditEventUserRegistered,
		ActorID:    userID,
		SubjectID:  userID,
		RequestID:  requestID,
		OccurredAt: uc.now().UTC(),
		Attributes: map[string]string{"account_type": draft.UserType, "contact_type": draft.ContactType},
	})

	nextRoute := constvars.RouteLogin
	if draft.UserType == constvars.AccountTypeUser {
		nextRoute = constvars.RouteCompleteProfile
	}

	uc.Log.Info("registrationUsecase.CompleteSignup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.CompleteSignup{User: user, NextRoute: nextRoute}, nil
}

func (uc *registrationUsecase) Abandon(ctx context.Context, draftID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrationUsecase.Abandon called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
	)
	return uc.RedisRepository.Delete(ctx, draftKey(draftID), challengeKey(draftID))
}

func (uc *registrationUsecase) validateSignupFiles(request *requests.CompleteSignup) error {
	if request.IDDocument == nil {
		return exceptions.ErrFileRequired(nil, constvars.FormFieldIDDocument)
	}
	if request.FaceImage == nil {
		return exceptions.ErrFileRequired(nil, constvars.FormFieldFaceImage)
	}

	idLimit := int64(uc.InternalConfig.Upload.IDDocumentMaxSizeInMB) * constvars.BytesInMegabyte
	if request.IDDocument.Size > idLimit {
		return exceptions.ErrFileTooLarge(nil, request.IDDocument.FileName, request.IDDocument.Size, idLimit)
	}
	if !utils.IsGovernmentIDType(request.IDDocument.ContentType) {
		return exceptions.ErrFileTypeNotAllowed(nil, request.IDDocument.FileName, request.IDDocument.ContentType)
	}

	faceLimit := int64(uc.InternalConfig.Upload.FaceImageMaxSizeInMB) * constvars.BytesInMegabyte
	if request.FaceImage.Size > faceLimit {
		return exceptions.ErrFileTooLarge(nil, request.FaceImage.FileName, request.FaceImage.Size, faceLimit)
	}
	if !utils.IsImage(request.FaceImage.ContentType) {
		return exceptions.ErrFileTypeNotAllowed(nil, request.FaceImage.FileName, request.FaceImage.ContentType)
	}
	return nil
}

// sendOTP asks upstream for a code and keeps only its hash. The draft moves
// to AwaitingOtp only after upstream reported success.
func (uc *registrationUsecase) sendOTP(ctx context.Context, draft *models.SignupDraft) (*models.OTPChallenge, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	limit, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      draft.ContactValue(),
		LimiterGroupName:  otpSendLimiterGroup,
		WindowDurationSec: otpSendWindowSeconds,
		MaxQuota:          otpSendMaxPerWindow,
	})
	if err != nil {
		return nil, err
	}
	if !limit.Allowed {
		return nil, exceptions.ErrTooManyRequests(nil).WithDetail(otpSendLimitDetailKey, limit.RetryAfterSecs)
	}

	otp, err := uc.Upstream.SendOTP(ctx, draft.ContactType, draft.ContactValue())
	if err != nil {
		uc.Log.Error("registrationUsecase.sendOTP error calling upstream SendOTP",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draft.DraftID),
			zap.Error(err),
		)
		return nil, err
	}

	codeHash, err := utils.HashSecret(otp)
	if err != nil {
		return nil, exceptions.ErrHashOTP(err)
	}

	now := uc.now()
	challenge := &models.OTPChallenge{
		ContactType:       draft.ContactType,
		ContactValue:      draft.ContactValue(),
		CodeHash:          codeHash,
		ExpiresAt:         now.Add(time.Duration(uc.InternalConfig.OTP.ExpiredTimeInSeconds) * time.Second),
		ResendAvailableAt: now.Add(time.Duration(uc.InternalConfig.OTP.ResendCooldownInSeconds) * time.Second),
	}
	if err := uc.RedisRepository.Set(ctx, challengeKey(draft.DraftID), challenge, uc.draftTTL()); err != nil {
		return nil, err
	}

	draft.State = models.SignupStateAwaitingOtp
	draft.UpdatedAt = now
	if err := uc.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	uc.Log.Info("registrationUsecase.sendOTP code sent",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draft.DraftID),
		zap.String(constvars.LoggingStateKey, draft.State),
	)
	return challenge, nil
}

func (uc *registrationUsecase) saveDraft(ctx context.Context, draft *models.SignupDraft) error {
	return uc.RedisRepository.Set(ctx, draftKey(draft.DraftID), draft, uc.draftTTL())
}

func (uc *registrationUsecase) loadDraft(ctx context.Context, draftID string) (*models.SignupDraft, error) {
	draft := new(models.SignupDraft)
	found, err := uc.RedisRepository.GetInto(ctx, draftKey(draftID), draft)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrDraftNotFound(nil, draftID)
	}
	return draft, nil
}

func (uc *registrationUsecase) loadChallenge(ctx context.Context, draftID string) (*models.OTPChallenge, error) {
	challenge := new(models.OTPChallenge)
	found, err := uc.RedisRepository.GetInto(ctx, challengeKey(draftID), challenge)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return challenge, nil
}

func (uc *registrationUsecase) buildDraftResponse(draft *models.SignupDraft, challenge *models.OTPChallenge) *responses.SignupDraft {
	response := &responses.SignupDraft{
		DraftID:     draft.DraftID,
		State:       draft.State,
		ContactType: draft.ContactType,
	}
	if challenge != nil {
		now := uc.now()
		response.ResendAvailableIn = CountdownUntil(now, challenge.ResendAvailableAt).Remaining()
		response.ExpiresIn = CountdownUntil(now, challenge.ExpiresAt).Remaining()
	}
	return response
}
