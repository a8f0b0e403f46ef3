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

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase contracts.DocumentUsecase
	InternalConfig  *config.InternalConfig
}

func NewDocumentController(logger *zap.Logger, documentUsecase contracts.DocumentUsecase, internalConfig *config.InternalConfig) *DocumentController {
	return &DocumentController{
		Log:             logger,
		DocumentUsecase: documentUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *DocumentController) StageFiles(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	files, err := formFiles(r, constvars.FormFieldFiles, ctrl.InternalConfig.Upload.MaxFileSizeInMB)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.StageFiles{
		UserID:       sessionFromContext(r).UserID(),
		Files:        files,
		Categories:   utils.SanitizeStringList(formList(r, constvars.FormFieldCategories)),
		EnabledTypes: utils.SanitizeStringList(withoutBlanks(formList(r, constvars.FormFieldFileTypes))),
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.StageFiles(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StageFilesSuccessMessage, response)
}

func (ctrl *DocumentController) ListStaged(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.ListStaged(ctx, sessionFromContext(r).UserID())
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListStagedSuccessMessage, response)
}

func (ctrl *DocumentController) AssignCategory(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AssignCategory)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.FileID = chi.URLParam(r, constvars.URLParamFileID)
	utils.SanitizeAssignCategoryRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.AssignCategory(ctx, sessionFromContext(r).UserID(), request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignCategorySuccessMessage, response)
}

func (ctrl *DocumentController) RemoveStagedFile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	fileID := chi.URLParam(r, constvars.URLParamFileID)
	response, err := ctrl.DocumentUsecase.RemoveStagedFile(ctx, sessionFromContext(r).UserID(), fileID)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveStagedSuccessMessage, response)
}

func (ctrl *DocumentController) CommitUpload(w http.ResponseWriter, r *http.Request) {
	timeout := time.Duration(ctrl.InternalConfig.Upstream.DocumentUploadTimeoutInSeconds)*time.Second + defaultRequestTimeout
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.CommitUpload(ctx, sessionIDFromContext(r))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CommitUploadSuccessMessage, response)
}

func (ctrl *DocumentController) Progress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.Progress(ctx, sessionFromContext(r).UserID())
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadProgressSuccessMessage, response)
}

func (ctrl *DocumentController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := &requests.DocumentQuery{
		Name:     query.Get(constvars.URLQueryParamName),
		Type:     query.Get(constvars.URLQueryParamType),
		Category: query.Get(constvars.URLQueryParamCategory),
		Date:     query.Get(constvars.URLQueryParamDate),
		Month:    query.Get(constvars.URLQueryParamMonth),
		Year:     query.Get(constvars.URLQueryParamYear),
		SortBy:   query.Get(constvars.URLQueryParamSort),
		Order:    query.Get(constvars.URLQueryParamOrder),
		View:     query.Get(constvars.URLQueryParamView),
	}
	utils.SanitizeDocumentQuery(request)

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.List(ctx, sessionIDFromContext(r), request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListDocumentsSuccessMessage, response)
}

func (ctrl *DocumentController) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.Summary(ctx, sessionIDFromContext(r))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SummarySuccessMessage, response)
}
