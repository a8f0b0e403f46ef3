package upstream

import (
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const maxResponseBodyBytes = 10 << 20

const (
	pathSendOTP              = "/auth/sendotp"
	pathSignup               = "/auth/signup"
	pathLogin                = "/auth/login"
	pathGetUserDetails       = "/auth/getUserDetails"
	pathIssueCard            = "/auth/getArogyaNetraCardId"
	pathGetUserByCardID      = "/auth/getUserByCardId/%s"
	pathVerifyCard           = "/auth/verifyCardAndGetUserData"
	pathRecognize            = "/recognize"
	pathUpdateMedicalProfile = "/user/update-medical-profile"
	pathUploadDocuments      = "/user/upload/%s"
	pathGetDocuments         = "/user/get-documents/%s"
	pathGetReportSummary     = "/user/get-report-summary/%s"
)

type arogyaNetraClient struct {
	BaseUrl        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
	Log            *zap.Logger

	hooksMu           sync.RWMutex
	unauthorizedHooks []func(ctx context.Context)
}

type Options struct {
	BaseUrl        string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
}

func NewArogyaNetraClient(opts Options, logger *zap.Logger) contracts.ArogyaNetraClient {
	return &arogyaNetraClient{
		BaseUrl:        strings.TrimRight(opts.BaseUrl, "/"),
		HTTPClient:     &http.Client{},
		RequestTimeout: opts.RequestTimeout,
		UploadTimeout:  opts.UploadTimeout,
		Log:            logger,
	}
}

func (c *arogyaNetraClient) OnUnauthorized(hook func(ctx context.Context)) {
	c.hooksMu.Lock()
	defer c.hooksMu.Unlock()
	c.unauthorizedHooks = append(c.unauthorizedHooks, hook)
}

func (c *arogyaNetraClient) fireUnauthorized(ctx context.Context) {
	c.hooksMu.RLock()
	hooks := append([]func(ctx context.Context){}, c.unauthorizedHooks...)
	c.hooksMu.RUnlock()
	for _, hook := range hooks {
		hook(ctx)
	}
}

type call struct {
	method      string
	path        string
	token       string
	body        io.Reader
	contentType string
	timeout     time.Duration
}

// do sends one request and classifies the outcome. Transport failures map to
// 502 or 504. A 401 or 403 on a call carrying a token fires the unauthorized
// hooks. Any other 4xx, or a body with success:false, is a business failure
// carrying the upstream message.
func (c *arogyaNetraClient) do(ctx context.Context, in call) (gjson.Result, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	start := time.Now()

	reqCtx := ctx
	if in.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, in.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, in.method, c.BaseUrl+in.path, in.body)
	if err != nil {
		return gjson.Result{}, exceptions.ErrUpstreamCreateRequest(err, in.path)
	}
	req.Header.Set("Accept", constvars.MIMEApplicationJSON)
	if in.contentType != "" {
		req.Header.Set(constvars.HeaderContentType, in.contentType)
	}
	if in.token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+in.token)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("arogyaNetraClient.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamPathKey, in.path),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return gjson.Result{}, exceptions.ErrUpstreamTimeout(err, in.path)
		}
		return gjson.Result{}, exceptions.ErrUpstreamUnavailable(err, in.path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return gjson.Result{}, exceptions.ErrUpstreamTimeout(err, in.path)
		}
		return gjson.Result{}, exceptions.ErrUpstreamUnavailable(err, in.path)
	}

	c.Log.Info("arogyaNetraClient.do completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, in.method),
		zap.String(constvars.LoggingUpstreamPathKey, in.path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) && in.token != "" {
		c.fireUnauthorized(ctx)
		return gjson.Result{}, exceptions.ErrUpstreamUnauthorized(nil, in.path, resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return gjson.Result{}, exceptions.ErrUpstreamUnavailable(fmt.Errorf("status %d", resp.StatusCode), in.path)
	}

	if !gjson.ValidBytes(body) {
		if resp.StatusCode >= http.StatusBadRequest {
			return gjson.Result{}, exceptions.ErrUpstreamBusinessFailure(fmt.Errorf("status %d", resp.StatusCode), in.path, "")
		}
		return gjson.Result{}, exceptions.ErrUpstreamMalformedResponse(nil, in.path)
	}

	result := gjson.ParseBytes(body)
	success := result.Get("success")
	if resp.StatusCode >= http.StatusBadRequest || (success.Exists() && !success.Bool()) {
		message := firstString(result, "message", "error", "msg")
		return gjson.Result{}, exceptions.ErrUpstreamBusinessFailure(fmt.Errorf("status %d", resp.StatusCode), in.path, message)
	}

	return result, nil
}

func firstString(result gjson.Result, paths ...string) string {
	for _, path := range paths {
		value := result.Get(path)
		if value.Exists() && value.Type == gjson.String && value.String() != "" {
			return value.String()
		}
	}
	return ""
}

func firstObject(result gjson.Result, paths ...string) (gjson.Result, bool) {
	for _, path := range paths {
		value := result.Get(path)
		if value.IsObject() {
			return value, true
		}
	}
	return gjson.Result{}, false
}
