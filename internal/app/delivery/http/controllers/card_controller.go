package controllers

import (
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type CardController struct {
	Log         *zap.Logger
	CardUsecase contracts.CardUsecase
}

func NewCardController(logger *zap.Logger, cardUsecase contracts.CardUsecase) *CardController {
	return &CardController{
		Log:         logger,
		CardUsecase: cardUsecase,
	}
}

func (ctrl *CardController) GetCard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.CardUsecase.GetOrCreate(ctx, sessionIDFromContext(r))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCardSuccessMessage, response)
}

func (ctrl *CardController) QRCode(w http.ResponseWriter, r *http.Request) {
	request := new(requests.QRCodeQuery)
	if raw := r.URL.Query().Get(constvars.URLQueryParamSize); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLQueryParamSize))
			return
		}
		request.Size = size
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	png, err := ctrl.CardUsecase.QRCode(ctx, sessionIDFromContext(r), request.Size)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildImageResponse(w, constvars.MIMEImagePNG, png)
}

func (ctrl *CardController) ExportImage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	png, err := ctrl.CardUsecase.Export(ctx, sessionIDFromContext(r))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="arogyanetra-card.png"`)
	utils.BuildImageResponse(w, constvars.MIMEImagePNG, png)
}

func (ctrl *CardController) ExportLink(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.CardUsecase.ExportLink(ctx, sessionIDFromContext(r))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExportCardSuccessMessage, response)
}
