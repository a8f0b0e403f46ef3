package upstream

import (
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *arogyaNetraClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewArogyaNetraClient(Options{
		BaseUrl:        server.URL,
		RequestTimeout: 2 * time.Second,
		UploadTimeout:  5 * time.Second,
	}, zap.NewNop())
	return client.(*arogyaNetraClient)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestLogin_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"token":   "upstream-token",
			"user": map[string]interface{}{
				"_id":         "u1",
				"firstName":   "Asha",
				"lastName":    "Rao",
				"email":       "a@b.com",
				"accountType": "User",
			},
		})
	})

	token, user, err := client.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", token)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Asha Rao", user.FullName())
}

func TestLogin_BusinessFailureKeepsUpstreamMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false,
			"message": "Password is incorrect",
		})
	})

	var fired int32
	client.OnUnauthorized(func(ctx context.Context) { atomic.AddInt32(&fired, 1) })

	_, _, err := client.Login(context.Background(), "a@b.com", "bad")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusUnprocessableEntity, statusOf(t, err))
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "Password is incorrect", customErr.ClientMessage)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestAuthenticatedCall_UnauthorizedFiresHooks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tkn", r.Header.Get(constvars.HeaderAuthorization))
		writeJSON(w, http.StatusForbidden, map[string]interface{}{"success": false})
	})

	var fired int32
	client.OnUnauthorized(func(ctx context.Context) { atomic.AddInt32(&fired, 1) })

	_, err := client.GetUserDetails(context.Background(), "tkn")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func TestSuccessFalseOn200_IsBusinessFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "message": "User already exists"})
	})

	_, err := client.SendOTP(context.Background(), "email", "a@b.com")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusUnprocessableEntity, statusOf(t, err))
}

func TestTimeout_Returns504(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	client.RequestTimeout = 50 * time.Millisecond

	_, err := client.GetUserDetails(context.Background(), "tkn")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusGatewayTimeout, statusOf(t, err))
}

func TestUnreachable_Returns502(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewArogyaNetraClient(Options{BaseUrl: baseURL, RequestTimeout: time.Second}, zap.NewNop())
	_, err := client.GetUserDetails(context.Background(), "tkn")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusBadGateway, statusOf(t, err))
}

func TestMalformedBody_Returns502(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	})

	_, err := client.GetUserDetails(context.Background(), "tkn")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusBadGateway, statusOf(t, err))
}

func TestSendOTP_ReadsNumericCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"otp":123456}`))
	})

	otp, err := client.SendOTP(context.Background(), "sms", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "123456", otp)
}

func TestIssueCard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"success":true,"cardDetails":{"cardId":"AN-123456-7890","issueDate":"2024-05-01"}}`))
	})

	card, err := client.IssueCard(context.Background(), "tkn")
	require.NoError(t, err)
	assert.Equal(t, "AN-123456-7890", card.CardID)
	assert.Equal(t, "2024-05-01", card.IssueDate)
}

func TestGetDocuments_FlattensGroupedForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/get-documents/u1", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"documentsByCategory":{"lab_result":[{"_id":"d1","fileName":"cbc.pdf","fileType":"application/pdf","uploadedAt":"2024-03-02T10:00:00Z"}]}}`))
	})

	docs, err := client.GetDocuments(context.Background(), "tkn", "u1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].ID)
	assert.Equal(t, "lab_result", docs[0].Category)
	assert.Equal(t, 2024, docs[0].UploadedAt.Year())
}

func TestVerifyCard_KeepsRawPatient(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "AN-123456-7890", body["qrData"])
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"p1","firstName":"Ravi","accountType":"User","ward":"B2"}}`))
	})

	patient, err := client.VerifyCard(context.Background(), "tkn", "AN-123456-7890")
	require.NoError(t, err)
	assert.Equal(t, "p1", patient.ID)
	assert.Contains(t, string(patient.Raw), "ward")
}

func TestUploadDocuments_SingleMultipartWithProgress(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Len(t, r.MultipartForm.File[constvars.FormFieldFiles], 2)
		assert.Equal(t, []string{"lab_result", "other"}, r.MultipartForm.Value[constvars.FormFieldCategories])
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	parts := []requests.DocumentPart{
		{FileName: "a.pdf", ContentType: constvars.MIMEApplicationPDF, Category: "lab_result", Size: 5, Content: bytes.NewReader([]byte("aaaaa"))},
		{FileName: "b.png", ContentType: constvars.MIMEImagePNG, Category: "other", Size: 3, Content: bytes.NewReader([]byte("bbb"))},
	}

	var last int64
	err := client.UploadDocuments(context.Background(), "tkn", "u1", parts, func(sent, total int64) {
		assert.Equal(t, int64(8), total)
		atomic.StoreInt64(&last, sent)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), atomic.LoadInt64(&last))
}

func TestUploadDocuments_ServerFailureDrainsWriter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": "bad category"})
	})

	parts := []requests.DocumentPart{
		{FileName: "a.pdf", ContentType: constvars.MIMEApplicationPDF, Category: "x", Size: 1, Content: bytes.NewReader([]byte("a"))},
	}
	err := client.UploadDocuments(context.Background(), "tkn", "u1", parts, nil)
	require.Error(t, err)
	assert.Equal(t, constvars.StatusUnprocessableEntity, statusOf(t, err))
}
