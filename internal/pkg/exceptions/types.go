package exceptions

import (
	"arogyanetra-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidation, paramName))
	}
	ErrBuildRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevBuildRequest)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrRequestInFlight = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientRequestInFlight, fmt.Sprintf(constvars.ErrDevRequestInFlight, key))
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevRequestLimitExceeded)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrSessionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSessionNotFound)
	}
	ErrParseSessionData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerParseSessionData)
	}
	ErrPermissionDenied = func(err error, method, path, accountType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevAuthPermissionDenied, method, path, accountType))
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevAuthInvalidCredentials)
	}
	ErrLoginLocked = func(err error, retryAfterSeconds int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientLoginLocked, fmt.Sprintf(constvars.ErrDevAuthLoginLocked, retryAfterSeconds)).
			WithDetail("retry_after", retryAfterSeconds)
	}

	// Registration
	ErrDraftNotFound = func(err error, draftID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDraftNotFound, fmt.Sprintf(constvars.ErrDevDraftNotFound, draftID))
	}
	ErrDraftInvalidState = func(err error, current, expected string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientDraftInvalidState, fmt.Sprintf(constvars.ErrDevDraftInvalidState, current, expected)).
			WithDetail("state", current)
	}
	ErrOTPCooldown = func(err error, remainingSeconds int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientOTPCooldown, fmt.Sprintf(constvars.ErrDevOTPCooldown, remainingSeconds)).
			WithDetail("resend_available_in", remainingSeconds)
	}
	ErrOTPExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGone, constvars.ErrClientOTPExpired, constvars.ErrDevOTPExpired)
	}
	ErrOTPInvalid = func(err error, attemptsLeft int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientOTPInvalid, constvars.ErrDevOTPInvalid).
			WithDetail("attempts_left", attemptsLeft)
	}
	ErrOTPMaxAttempts = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientOTPMaxAttempts, constvars.ErrDevOTPMaxAttempts)
	}
	ErrHashOTP = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevHashOTP)
	}
	ErrPasswordTooWeak = func(err error, strength, required int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPasswordTooWeak, fmt.Sprintf(constvars.ErrDevPasswordTooWeak, strength, required)).
			WithDetail("strength", strength)
	}
	ErrPasswordDoNotMatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPasswordsDoNotMatch, constvars.ErrDevPasswordsDoNotMatch)
	}

	// Files
	ErrFileTooLarge = func(err error, fileName string, size, limit int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooLarge, fmt.Sprintf(constvars.ErrClientFileTooLarge, limit/constvars.BytesInMegabyte), fmt.Sprintf(constvars.ErrDevFileTooLarge, fileName, size, limit)).
			WithDetail("file_name", fileName)
	}
	ErrFileTypeNotAllowed = func(err error, fileName, contentType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnsupportedMediaType, fmt.Sprintf(constvars.ErrClientFileTypeNotAllowed, contentType), fmt.Sprintf(constvars.ErrDevFileTypeNotAllowed, fileName, contentType)).
			WithDetail("file_name", fileName)
	}
	ErrFileRequired = func(err error, field string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientFileRequired, field), fmt.Sprintf(constvars.ErrDevFileRequired, field))
	}

	// Profile wizard
	ErrWizardNotStarted = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientWizardNotStarted, constvars.ErrDevWizardNotStarted)
	}
	ErrWizardStepMismatch = func(err error, current, submitted int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientWizardStepMismatch, fmt.Sprintf(constvars.ErrDevWizardStepMismatch, current, submitted)).
			WithDetail("step", current)
	}
	ErrWizardNotOnLastStep = func(err error, current int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientWizardNotOnLastStep, fmt.Sprintf(constvars.ErrDevWizardNotOnLastStep, current)).
			WithDetail("step", current)
	}

	// Documents
	ErrStagedFileNotFound = func(err error, fileID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientStagedFileNotFound, fmt.Sprintf(constvars.ErrDevStagedFileNotFound, fileID))
	}
	ErrStagingEmpty = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientStagingEmpty, constvars.ErrDevStagingEmpty)
	}
	ErrCategoriesMissing = func(err error, missing []string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCategoriesMissing, fmt.Sprintf(constvars.ErrDevCategoriesMissing, len(missing))).
			WithDetail("missing_categories", missing)
	}

	// Cards
	ErrCardOnlyForUsers = func(err error, accountType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientCardOnlyForUsers, fmt.Sprintf(constvars.ErrDevCardOnlyForUsers, accountType))
	}

	// Identification
	ErrFaceRecognitionTimeout = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientFaceRecognitionTimeout, constvars.ErrDevFaceRecognitionDeadline)
	}
	ErrInvalidQRPayload = func(err error, resetAfterSeconds int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidQRPayload, constvars.ErrDevInvalidQRPayload).
			WithDetail("reset_after_seconds", resetAfterSeconds)
	}
	ErrSearchByCardID = func(err error, query string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientSearchByCardID, fmt.Sprintf(constvars.ErrDevSearchByCardID, query))
	}
	ErrUnknownIdentifyMethod = func(err error, method string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUnknownIdentifyMethod, fmt.Sprintf(constvars.ErrDevUnknownIdentifyMethod, method))
	}
	ErrNoPatientSelected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientNoPatientSelected, constvars.ErrDevNoPatientSelected)
	}

	// Upstream
	ErrUpstreamCreateRequest = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUpstreamCreateRequest, path))
	}
	ErrUpstreamUnavailable = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevUpstreamUnavailable, path))
	}
	ErrUpstreamTimeout = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientUpstreamTimeout, fmt.Sprintf(constvars.ErrDevUpstreamTimeout, path))
	}
	ErrUpstreamUnauthorized = func(err error, path string, status int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, fmt.Sprintf(constvars.ErrDevUpstreamUnauthorized, path, status))
	}
	ErrUpstreamBusinessFailure = func(err error, path, message string) *CustomError {
		if message == "" {
			message = constvars.ErrClientCannotProcessRequest
		}
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, message, fmt.Sprintf(constvars.ErrDevUpstreamBusinessFailure, path))
	}
	ErrUpstreamMalformedResponse = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevUpstreamMalformedResponse, path))
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBCreateIndex = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDBFailedToCreateIndex, collection))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioGetObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToGetObject, bucketName))
	}
	ErrMinioRemoveObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToRemoveObject, bucketName))
	}
	ErrMinioFindObjectPresignedURL = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToGetObjectPresignedURL, bucketName))
	}
	ErrMinioCreateBucket = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateBucket, bucketName))
	}

	// Redis
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementValue)
	}
	ErrRedisLock = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisLock, key))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queue))
	}

	// Images
	ErrImageEncode = func(err error, kind string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevImageEncode, kind))
	}
	ErrImageDecode = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevImageDecode)
	}
)
