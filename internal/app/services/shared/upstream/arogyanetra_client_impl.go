package upstream

import (
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

func (c *arogyaNetraClient) SendOTP(ctx context.Context, contactType, contactValue string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"contactType":  contactType,
		"contactValue": contactValue,
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := c.do(ctx, call{
		method:      constvars.MethodPost,
		path:        pathSendOTP,
		body:        bytes.NewReader(body),
		contentType: constvars.MIMEApplicationJSON,
		timeout:     c.RequestTimeout,
	})
	if err != nil {
		return "", err
	}

	otp := firstString(result, "otp", "data.otp")
	if otp == "" {
		// some deployments send the code as a number
		if value := result.Get("otp"); value.Type == gjson.Number {
			otp = value.Raw
		}
	}
	if otp == "" {
		return "", exceptions.ErrUpstreamMalformedResponse(nil, pathSendOTP)
	}
	return otp, nil
}

func (c *arogyaNetraClient) Signup(ctx context.Context, form requests.UpstreamSignup) (*models.UserProfile, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"mobile_no", form.MobileNo},
		{"email", form.Email},
		{"contactType", form.ContactType},
		{"userType", form.UserType},
		{"password", form.Password},
	}
	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, exceptions.ErrUpstreamCreateRequest(err, pathSignup)
		}
	}
	if err := writeFilePart(writer, constvars.FormFieldIDDocument, form.IDDocument); err != nil {
		return nil, exceptions.ErrUpstreamCreateRequest(err, pathSignup)
	}
	if err := writeFilePart(writer, constvars.FormFieldFaceImage, form.FaceImage); err != nil {
		return nil, exceptions.ErrUpstreamCreateRequest(err, pathSignup)
	}
	if err := writer.Close(); err != nil {
		return nil, exceptions.ErrUpstreamCreateRequest(err, pathSignup)
	}

	result, err := c.do(ctx, call{
		method:      constvars.MethodPost,
		path:        pathSignup,
		body:        &buf,
		contentType: writer.FormDataContentType(),
		timeout:     c.UploadTimeout,
	})
	if err != nil {
		return nil, err
	}

	user, ok := firstObject(result, "user", "data.user", "data")
	if !ok {
		return &models.UserProfile{}, nil
	}
	return decodeUser(user, pathSignup)
}

func (c *arogyaNetraClient) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", nil, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := c.do(ctx, call{
		method:      constvars.MethodPost,
		path:        pathLogin,
		body:        bytes.NewReader(body),
		contentType: constvars.MIMEApplicationJSON,
		timeout:     c.RequestTimeout,
	})
	if err != nil {
		return "", nil, err
	}

	token := firstString(result, "token", "data.token")
	user, ok := firstObject(result, "user", "data.user")
	if token == "" || !ok {
		return "", nil, exceptions.ErrUpstreamMalformedResponse(nil, pathLogin)
	}

	profile, err := decodeUser(user, pathLogin)
	if err != nil {
		return "", nil, err
	}
	return token, profile, nil
}

func (c *arogyaNetraClient) GetUserDetails(ctx context.Context, token string) (*models.UserProfile, error) {
	result, err := c.do(ctx, call{
		method:  constvars.MethodGet,
		path:    pathGetUserDetails,
		token:   token,
		timeout: c.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}

	user, ok := firstObject(result, "data", "user", "data.user")
	if !ok {
		return nil, exceptions.ErrUpstreamMalformedResponse(nil, pathGetUserDetails)
	}
	return decodeUser(user, pathGetUserDetails)
}

func (c *arogyaNetraClient) IssueCard(ctx context.Context, token string) (*models.ArogyaNetraCard, error) {
	result, err := c.do(ctx, call{
		method:  constvars.MethodPost,
		path:    pathIssueCard,
		token:   token,
		timeout: c.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}

	details, ok := firstObject(result, "cardDetails", "data.cardDetails", "data")
	if !ok || details.Get("cardId").String() == "" {
		return nil, exceptions.ErrUpstreamMalformedResponse(nil, pathIssueCard)
	}
	return &models.ArogyaNetraCard{
		CardID:    details.Get("cardId").String(),
		IssueDate: details.Get("issueDate").String(),
		Status:    details.Get("status").String(),
	}, nil
}

func (c *arogyaNetraClient) UpdateMedicalProfile(ctx context.Context, token string, profile requests.UpdateMedicalProfile) error {
	body, err := json.Marshal(profile)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = c.do(ctx, call{
		method:      constvars.MethodPost,
		path:        pathUpdateMedicalProfile,
		token:       token,
		body:        bytes.NewReader(body),
		contentType: constvars.MIMEApplicationJSON,
		timeout:     c.RequestTimeout,
	})
	return err
}

// UploadDocuments streams every part into a single multipart request. The
// body is produced on a pipe so staged blobs are never buffered whole.
func (c *arogyaNetraClient) UploadDocuments(ctx context.Context, token, userID string, parts []requests.DocumentPart, progress contracts.ProgressFunc) error {
	path := fmt.Sprintf(pathUploadDocuments, url.PathEscape(userID))

	var total int64
	for _, part := range parts {
		total += part.Size
	}
	counter := &progressCounter{total: total, report: progress}

	pipeReader, pipeWriter := io.Pipe()
	writer := multipart.NewWriter(pipeWriter)

	go func() {
		pipeWriter.CloseWithError(writeDocumentParts(writer, parts, counter))
	}()

	_, err := c.do(ctx, call{
		method:      constvars.MethodPost,
		path:        path,
		token:       token,
		body:        pipeReader,
		contentType: writer.FormDataContentType(),
		timeout:     c.UploadTimeout,
	})
	// unblocks the writer goroutine if the request ended early
	pipeReader.Close()
	if err != nil {
		return err
	}

	counter.finish()
	return nil
}

func writeDocumentParts(writer *multipart.Writer, parts []requests.DocumentPart, counter *progressCounter) error {
	for _, part := range parts {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, constvars.FormFieldFiles, escapeQuotes(part.FileName)))
		header.Set(constvars.HeaderContentType, part.ContentType)
		dst, err := writer.CreatePart(header)
		if err != nil {
			return err
		}
		if _, err := io.Copy(dst, &countingReader{reader: part.Content, counter: counter}); err != nil {
			return err
		}
	}
	for _, part := range parts {
		if err := writer.WriteField(constvars.FormFieldCategories, part.Category); err != nil {
			return err
		}
	}
	return writer.Close()
}

func (c *arogyaNetraClient) GetDocuments(ctx context.Context, token, userID string) ([]models.Document, error) {
	path := fmt.Sprintf(pathGetDocuments, url.PathEscape(userID))
	result, err := c.do(ctx, call{
		method:  constvars.MethodGet,
		path:    path,
		token:   token,
		timeout: c.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}

	documents := make([]models.Document, 0)
	list := result.Get("documents")
	if !list.Exists() {
		list = result.Get("data.documents")
	}
	if list.IsArray() {
		for _, item := range list.Array() {
			documents = append(documents, decodeDocument(item, ""))
		}
		return documents, nil
	}

	// older deployments only send the grouped form
	grouped := result.Get("documentsByCategory")
	if !grouped.Exists() {
		grouped = result.Get("data.documentsByCategory")
	}
	if grouped.IsObject() {
		grouped.ForEach(func(category, items gjson.Result) bool {
			for _, item := range items.Array() {
				documents = append(documents, decodeDocument(item, category.String()))
			}
			return true
		})
		return documents, nil
	}

	if list.Exists() {
		return nil, exceptions.ErrUpstreamMalformedResponse(nil, path)
	}
	return documents, nil
}

func (c *arogyaNetraClient) GetReportSummary(ctx context.Context, token, userID string) (*models.ReportSummary, error) {
	path := fmt.Sprintf(pathGetReportSummary, url.PathEscape(userID))
	result, err := c.do(ctx, call{
		method:  constvars.MethodGet,
		path:    path,
		token:   token,
		timeout: c.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}

	summary := &models.ReportSummary{
		Summary:     firstString(result, "summary", "data.summary", "data"),
		GeneratedAt: firstString(result, "generatedAt", "data.generatedAt"),
	}
	if data := result.Get("data"); data.IsObject() || data.IsArray() {
		summary.Raw = data.Value()
	}
	return summary, nil
}

func (c *arogyaNetraClient) GetUserByCardID(ctx context.Context, token, cardID string) (*models.PatientRecord, error) {
	path := fmt.Sprintf(pathGetUserByCardID, url.PathEscape(cardID))
	result, err := c.do(ctx, call{
		method:  constvars.MethodGet,
		path:    path,
		token:   token,
		timeout: c.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}
	return decodePatient(result, path)
}

func (c *arogyaNetraClient) VerifyCard(ctx context.Context, token, qrData string) (*models.PatientRecord, error) {
	body, err := json.Marshal(map[string]string{"qrData": qrData})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := c.do(ctx, call{
		method:      constvars.MethodPost,
		path:        pathVerifyCard,
		token:       token,
		body:        bytes.NewReader(body),
		contentType: constvars.MIMEApplicationJSON,
		timeout:     c.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}
	return decodePatient(result, pathVerifyCard)
}

// RecognizeFace relies on the caller's context for its deadline.
func (c *arogyaNetraClient) RecognizeFace(ctx context.Context, token string, photo *requests.UploadedFile) (*models.PatientRecord, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writeFilePart(writer, constvars.FormFieldPhoto, photo); err != nil {
		return nil, exceptions.ErrUpstreamCreateRequest(err, pathRecognize)
	}
	if err := writer.Close(); err != nil {
		return nil, exceptions.ErrUpstreamCreateRequest(err, pathRecognize)
	}

	result, err := c.do(ctx, call{
		method:      constvars.MethodPost,
		path:        pathRecognize,
		token:       token,
		body:        &buf,
		contentType: writer.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}
	return decodePatient(result, pathRecognize)
}

func writeFilePart(writer *multipart.Writer, field string, file *requests.UploadedFile) error {
	if file == nil {
		return nil
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, escapeQuotes(file.FileName)))
	header.Set(constvars.HeaderContentType, file.ContentType)
	dst, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = dst.Write(file.Content)
	return err
}

func decodeUser(raw gjson.Result, path string) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := json.Unmarshal([]byte(raw.Raw), &user); err != nil {
		return nil, exceptions.ErrUpstreamMalformedResponse(err, path)
	}
	if user.ID == "" {
		user.ID = raw.Get("_id").String()
	}
	if user.Mobile == "" {
		user.Mobile = raw.Get("mobile_no").String()
	}
	return &user, nil
}

func decodePatient(result gjson.Result, path string) (*models.PatientRecord, error) {
	raw, ok := firstObject(result, "data.user", "user", "patient", "data")
	if !ok {
		return nil, exceptions.ErrUpstreamMalformedResponse(nil, path)
	}
	user, err := decodeUser(raw, path)
	if err != nil {
		return nil, err
	}
	return &models.PatientRecord{
		UserProfile: *user,
		Raw:         json.RawMessage(raw.Raw),
	}, nil
}

func decodeDocument(item gjson.Result, category string) models.Document {
	document := models.Document{
		ID:       firstString(item, "id", "_id"),
		FileName: firstString(item, "fileName", "name"),
		FileType: firstString(item, "fileType", "mimeType", "type"),
		FileURL:  firstString(item, "fileUrl", "url"),
		Category: firstString(item, "category"),
	}
	if document.Category == "" {
		document.Category = category
	}
	if uploadedAt := firstString(item, "uploadedAt", "createdAt"); uploadedAt != "" {
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, uploadedAt); err == nil {
				document.UploadedAt = parsed
				break
			}
		}
	}
	return document
}

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
