package controllers

import (
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProfileController struct {
	Log            *zap.Logger
	ProfileUsecase contracts.ProfileUsecase
}

func NewProfileController(logger *zap.Logger, profileUsecase contracts.ProfileUsecase) *ProfileController {
	return &ProfileController{
		Log:            logger,
		ProfileUsecase: profileUsecase,
	}
}

// GetWizard starts or resumes the wizard when mode is given, otherwise it
// returns the wizard in progress.
func (ctrl *ProfileController) GetWizard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	sessionID := sessionIDFromContext(r)
	mode := r.URL.Query().Get(constvars.URLQueryParamMode)

	var err error
	var response *responses.ProfileWizard
	if mode == "" {
		response, err = ctrl.ProfileUsecase.Current(ctx, sessionID)
	} else {
		response, err = ctrl.ProfileUsecase.Start(ctx, sessionID, mode)
	}
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWizardSuccessMessage, response)
}

func (ctrl *ProfileController) SaveStep(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamStep))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamStep))
		return
	}

	request := new(requests.SaveProfileStep)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeSaveProfileStepRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.ProfileUsecase.SaveStep(ctx, sessionIDFromContext(r), step, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveStepSuccessMessage, response)
}

func (ctrl *ProfileController) Back(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.ProfileUsecase.Back(ctx, sessionIDFromContext(r))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StepBackSuccessMessage, response)
}

func (ctrl *ProfileController) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.ProfileUsecase.Submit(ctx, sessionIDFromContext(r))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitProfileSuccessMessage, response)
}
