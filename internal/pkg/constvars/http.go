package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)

const (
	MIMEApplicationJSON   = "application/json"
	MIMEApplicationPDF    = "application/pdf"
	MIMEMultipartForm     = "multipart/form-data"
	MIMEOctetStream       = "application/octet-stream"
	MIMEImagePNG          = "image/png"
	MIMEImageJPEG         = "image/jpeg"
	MIMEApplicationMSWord = "application/msword"
	MIMEApplicationDOCX   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

const (
	StatusOK                    = 200
	StatusCreated               = 201
	StatusBadRequest            = 400
	StatusUnauthorized          = 401
	StatusForbidden             = 403
	StatusNotFound              = 404
	StatusConflict              = 409
	StatusGone                  = 410
	StatusRequestEntityTooLarge = 413
	StatusUnsupportedMediaType  = 415
	StatusUnprocessableEntity   = 422
	StatusTooManyRequests       = 429
	StatusInternalServerError   = 500
	StatusBadGateway            = 502
	StatusServiceUnavailable    = 503
	StatusGatewayTimeout        = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRetryAfter    = "Retry-After"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
)

const (
	URLParamDraftID = "draftID"
	URLParamStep    = "step"
	URLParamFileID  = "fileID"

	URLQueryParamMode     = "mode"
	URLQueryParamSize     = "size"
	URLQueryParamSearch   = "q"
	URLQueryParamName     = "name"
	URLQueryParamType     = "type"
	URLQueryParamCategory = "category"
	URLQueryParamDate     = "date"
	URLQueryParamMonth    = "month"
	URLQueryParamYear     = "year"
	URLQueryParamSort     = "sort"
	URLQueryParamOrder    = "order"
	URLQueryParamView     = "view"
)
