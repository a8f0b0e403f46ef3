package controllers

import (
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 30 * time.Second

func sessionIDFromContext(r *http.Request) string {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return sessionID
}

func sessionFromContext(r *http.Request) *models.Session {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if session == nil {
		return &models.Session{}
	}
	return session
}

func buildUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func parseMultipart(r *http.Request) error {
	err := r.ParseMultipartForm(constvars.MultipartMemoryBuffer)
	if err != nil {
		return exceptions.ErrCannotParseMultipartForm(err)
	}
	return nil
}

// formFile returns nil without error when the field is absent.
func formFile(r *http.Request, field string, maxMB int) (*requests.UploadedFile, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, nil
	}
	file, err := utils.ReadUploadedFile(r.MultipartForm.File[field][0], int64(maxMB)*constvars.BytesInMegabyte)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	return file, nil
}

func formFiles(r *http.Request, field string, maxMB int) ([]requests.UploadedFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	files := make([]requests.UploadedFile, 0, len(headers))
	for _, header := range headers {
		file, err := utils.ReadUploadedFile(header, int64(maxMB)*constvars.BytesInMegabyte)
		if err != nil {
			return nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		files = append(files, *file)
	}
	return files, nil
}

// formList accepts both repeated fields and a single comma separated value.
// Blank entries are kept so position i still lines up with file i.
func formList(r *http.Request, field string) []string {
	if r.MultipartForm == nil {
		return nil
	}
	values := make([]string, 0)
	for _, value := range r.MultipartForm.Value[field] {
		for _, entry := range strings.Split(value, ",") {
			values = append(values, strings.TrimSpace(entry))
		}
	}
	return values
}

func withoutBlanks(values []string) []string {
	kept := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			kept = append(kept, value)
		}
	}
	return kept
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constvars.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
