package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockUploader is a mock implementation of Uploader
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}

// pngBytes is a minimal valid PNG header, enough for content sniffing.
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func multipartBody(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		assert.NoError(t, err)
		_, err = fw.Write(content)
		assert.NoError(t, err)
	}
	assert.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestUploadHandler_UploadImage(t *testing.T) {
	tests := []struct {
		name           string
		files          map[string][]byte
		setup          func(*MockUploader)
		expectedStatus int
	}{
		{
			name:  "successful image upload",
			files: map[string][]byte{"photo.png": pngBytes},
			setup: func(up *MockUploader) {
				up.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, ".png")
				}), "image/png", mock.Anything).Return("https://cdn.example.com/uploads/x.png", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing file",
			files:          nil,
			setup:          func(up *MockUploader) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-image content rejected",
			files:          map[string][]byte{"notes.txt": []byte("plain text, not an image")},
			setup:          func(up *MockUploader) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "storage error",
			files: map[string][]byte{"photo.png": pngBytes},
			setup: func(up *MockUploader) {
				up.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUploader := &MockUploader{}
			tt.setup(mockUploader)

			handler := NewUploadHandler(mockUploader, zap.NewNop())
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/upload/image", handler.UploadImage)

			body, contentType := multipartBody(t, "image", tt.files)
			req := httptest.NewRequest("POST", "/upload/image", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockUploader.AssertExpectations(t)
		})
	}
}

func TestUploadHandler_UploadImages(t *testing.T) {
	mockUploader := &MockUploader{}
	mockUploader.On("Upload", mock.Anything, mock.Anything, "image/png", mock.Anything).
		Return("https://cdn.example.com/uploads/x.png", nil).Twice()

	handler := NewUploadHandler(mockUploader, zap.NewNop())
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload/images", handler.UploadImages)

	body, contentType := multipartBody(t, "images", map[string][]byte{
		"a.png": pngBytes,
		"b.png": pngBytes,
	})
	req := httptest.NewRequest("POST", "/upload/images", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUploader.AssertExpectations(t)
}
