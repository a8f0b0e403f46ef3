package controllers

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RegistrationController struct {
	Log                 *zap.Logger
	RegistrationUsecase contracts.RegistrationUsecase
	InternalConfig      *config.InternalConfig
}

func NewRegistrationController(logger *zap.Logger, registrationUsecase contracts.RegistrationUsecase, internalConfig *config.InternalConfig) *RegistrationController {
	return &RegistrationController{
		Log:                 logger,
		RegistrationUsecase: registrationUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *RegistrationController) SubmitIdentity(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterIdentity)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeRegisterIdentityRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.RegistrationUsecase.SubmitIdentity(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterIdentitySuccessMessage, response)
}

func (ctrl *RegistrationController) Status(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.RegistrationUsecase.Status(ctx, chi.URLParam(r, constvars.URLParamDraftID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegisterStatusSuccessMessage, response)
}

func (ctrl *RegistrationController) ResendOTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.RegistrationUsecase.ResendOTP(ctx, chi.URLParam(r, constvars.URLParamDraftID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResendOTPSuccessMessage, response)
}

func (ctrl *RegistrationController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VerifyOTP)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.DraftID = chi.URLParam(r, constvars.URLParamDraftID)
	utils.SanitizeVerifyOTPRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.RegistrationUsecase.VerifyOTP(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyOTPSuccessMessage, response)
}

func (ctrl *RegistrationController) CompleteSignup(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	upload := ctrl.InternalConfig.Upload
	idDocument, err := formFile(r, constvars.FormFieldIDDocument, upload.IDDocumentMaxSizeInMB)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	faceImage, err := formFile(r, constvars.FormFieldFaceImage, upload.FaceImageMaxSizeInMB)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.CompleteSignup{
		DraftID:         chi.URLParam(r, constvars.URLParamDraftID),
		IDDocument:      idDocument,
		FaceImage:       faceImage,
		Password:        r.FormValue(constvars.FormFieldPassword),
		ConfirmPassword: r.FormValue(constvars.FormFieldConfirm),
	}

	timeout := time.Duration(ctrl.InternalConfig.Upstream.DocumentUploadTimeoutInSeconds)*time.Second + defaultRequestTimeout
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	response, err := ctrl.RegistrationUsecase.CompleteSignup(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CompleteSignupSuccessMessage, response)
}

func (ctrl *RegistrationController) Abandon(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	err := ctrl.RegistrationUsecase.Abandon(ctx, chi.URLParam(r, constvars.URLParamDraftID))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AbandonSignupSuccessMessage, nil)
}
