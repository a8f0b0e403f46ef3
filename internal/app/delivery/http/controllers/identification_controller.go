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
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type IdentificationController struct {
	Log                   *zap.Logger
	IdentificationUsecase contracts.IdentificationUsecase
	InternalConfig        *config.InternalConfig
}

func NewIdentificationController(logger *zap.Logger, identificationUsecase contracts.IdentificationUsecase, internalConfig *config.InternalConfig) *IdentificationController {
	return &IdentificationController{
		Log:                   logger,
		IdentificationUsecase: identificationUsecase,
		InternalConfig:        internalConfig,
	}
}

func (ctrl *IdentificationController) FaceScan(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	photo, err := formFile(r, constvars.FormFieldPhoto, ctrl.InternalConfig.Upload.FaceImageMaxSizeInMB)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// The identifier applies the face recognition limit itself.
	timeout := time.Duration(ctrl.InternalConfig.Upstream.FaceRecognitionTimeoutInSeconds)*time.Second + defaultRequestTimeout
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	ctrl.identify(ctx, w, r, constvars.IdentifyMethodFaceScan, &requests.IdentifyInput{Photo: photo})
}

// QRScan takes either a JSON body with the decoded text or a multipart
// camera frame.
func (ctrl *IdentificationController) QRScan(w http.ResponseWriter, r *http.Request) {
	input := new(requests.IdentifyInput)

	if strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
		if err := parseMultipart(r); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		frame, err := formFile(r, constvars.FormFieldFrame, ctrl.InternalConfig.Upload.FaceImageMaxSizeInMB)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		if frame == nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileRequired(nil, constvars.FormFieldFrame))
			return
		}
		input.Frame = frame
	} else {
		request := new(requests.QRScan)
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
		utils.SanitizeQRScanRequest(request)

		err = utils.ValidateStruct(request)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
		input.QRText = request.QRData
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	ctrl.identify(ctx, w, r, constvars.IdentifyMethodQRScan, input)
}

func (ctrl *IdentificationController) Search(w http.ResponseWriter, r *http.Request) {
	request := &requests.CardSearch{Query: r.URL.Query().Get(constvars.URLQueryParamSearch)}
	utils.SanitizeCardSearchRequest(request)

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	ctrl.identify(ctx, w, r, constvars.IdentifyMethodSearch, &requests.IdentifyInput{Query: request.Query})
}

func (ctrl *IdentificationController) Current(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.IdentificationUsecase.Current(ctx, sessionIDFromContext(r))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CurrentPatientSuccessMessage, response)
}

func (ctrl *IdentificationController) Clear(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	err := ctrl.IdentificationUsecase.Clear(ctx, sessionIDFromContext(r))
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearPatientSuccessMessage, nil)
}

func (ctrl *IdentificationController) identify(ctx context.Context, w http.ResponseWriter, r *http.Request, method string, input *requests.IdentifyInput) {
	response, err := ctrl.IdentificationUsecase.Identify(ctx, sessionIDFromContext(r), method, input)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.IdentifyPatientSuccessMessage, response)
}
