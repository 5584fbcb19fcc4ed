package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloud-showcase/internal/delivery/http/middleware"
	"cloud-showcase/internal/domain/dto"
	"cloud-showcase/internal/domain/entities"
	"cloud-showcase/internal/infrastructure/mediaservice"
	"cloud-showcase/pkg/errors"
)

const testSecret = "test-secret"

type fakeService struct {
	uploadCalls int
	imageCalls  int
	video       *entities.Video
	imageResult *mediaservice.UploadResult
	videos      []entities.Video
	uploadErr   error
	listErr     error
}

func (f *fakeService) UploadVideo(_ context.Context, req *dto.VideoUploadRequestDTO, _ *multipart.FileHeader) (*entities.Video, error) {
	f.uploadCalls++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	if f.video == nil {
		f.video = &entities.Video{ID: uuid.New(), Title: req.Title, OriginalSize: req.OriginalSize}
	}
	return f.video, nil
}

func (f *fakeService) UploadImage(_ context.Context, _ *multipart.FileHeader) (*mediaservice.UploadResult, error) {
	f.imageCalls++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return f.imageResult, nil
}

func (f *fakeService) ListVideos(_ context.Context) ([]entities.Video, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.videos, nil
}

type fakeMediaClient struct {
	mediaservice.URLBuilder
}

func (f *fakeMediaClient) UploadVideo(_ context.Context, _ io.Reader, _ mediaservice.UploadOptions) (*mediaservice.UploadResult, error) {
	return nil, nil
}

func (f *fakeMediaClient) UploadImage(_ context.Context, _ io.Reader, _ mediaservice.UploadOptions) (*mediaservice.UploadResult, error) {
	return nil, nil
}

func newTestApp(svc *fakeService, mediaConfigured bool) *fiber.App {
	media := &fakeMediaClient{URLBuilder: mediaservice.URLBuilder{CloudName: "demo"}}
	videoHandler := NewVideoHandler(svc, media, mediaConfigured)
	imageHandler := NewImageHandler(svc, media, mediaConfigured)

	app := fiber.New()
	api := app.Group("/api", middleware.RequireSession(testSecret))
	api.Post("/video-upload", videoHandler.Upload)
	api.Post("/image-upload", imageHandler.Upload)
	api.Get("/videos", videoHandler.List)
	return app
}

func sessionToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user_1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

type formField struct{ key, value string }

func multipartRequest(t *testing.T, target string, fields []formField, withFile bool) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		require.NoError(t, w.WriteField(f.key, f.value))
	}
	if withFile {
		fw, err := w.CreateFormFile("file", "demo.mp4")
		require.NoError(t, err)
		_, err = fw.Write(bytes.Repeat([]byte("a"), 64))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func authedRequest(t *testing.T, req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sessionToken(t)})
	return req
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func videoFields() []formField {
	return []formField{
		{"title", "Demo"},
		{"description", "A demo clip"},
		{"originalSize", "5000000"},
	}
}

func TestVideoUploadUnauthenticated(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc, true)

	req := multipartRequest(t, "/api/video-upload", videoFields(), true)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", decodeError(t, resp))
	assert.Zero(t, svc.uploadCalls)
}

func TestVideoUploadMissingFields(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc, true)

	for _, fields := range [][]formField{
		{{"description", "x"}, {"originalSize", "1"}},
		{{"title", "x"}, {"originalSize", "1"}},
		{{"title", "x"}, {"description", "y"}},
		{{"title", "x"}, {"description", "y"}, {"originalSize", "not-a-number"}},
	} {
		req := authedRequest(t, multipartRequest(t, "/api/video-upload", fields, true))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Missing required fields", decodeError(t, resp))
	}
	assert.Zero(t, svc.uploadCalls)
}

func TestVideoUploadMissingFile(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc, true)

	req := authedRequest(t, multipartRequest(t, "/api/video-upload", videoFields(), false))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "File not found", decodeError(t, resp))
	assert.Zero(t, svc.uploadCalls)
}

func TestVideoUploadSuccess(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc, true)

	req := authedRequest(t, multipartRequest(t, "/api/video-upload", videoFields(), true))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, svc.uploadCalls)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body)
}

func TestVideoUploadUpstreamFailure(t *testing.T) {
	svc := &fakeService{uploadErr: errors.ErrUploadFailed(assert.AnError)}
	app := newTestApp(svc, true)

	req := authedRequest(t, multipartRequest(t, "/api/video-upload", videoFields(), true))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Upload failed", decodeError(t, resp))
}

func TestVideoUploadServiceUnavailable(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc, false)

	req := authedRequest(t, multipartRequest(t, "/api/video-upload", videoFields(), true))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Cloudinary not configured", decodeError(t, resp))
	assert.Zero(t, svc.uploadCalls)
}

func TestImageUploadServiceUnavailable(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc, false)

	req := authedRequest(t, multipartRequest(t, "/api/image-upload", nil, true))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Cloudinary not configured", decodeError(t, resp))
	assert.Zero(t, svc.imageCalls)
}

func TestImageUploadSuccess(t *testing.T) {
	svc := &fakeService{imageResult: &mediaservice.UploadResult{PublicID: "image-uploads/img1"}}
	app := newTestApp(svc, true)

	req := authedRequest(t, multipartRequest(t, "/api/image-upload", nil, true))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ImageUploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "image-uploads/img1", body.PublicID)
	assert.Len(t, body.URLs, len(mediaservice.SocialFormats))
	assert.Contains(t, body.URLs["Instagram Square (1:1)"], "w_1080,h_1080")
}

func TestListVideosIncludesDerivedURLs(t *testing.T) {
	svc := &fakeService{videos: []entities.Video{{
		ID:             uuid.New(),
		Title:          "Demo",
		PublicID:       "video-uploads/xyz",
		OriginalSize:   5_000_000,
		CompressedSize: 3_000_000,
	}}}
	app := newTestApp(svc, true)

	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
	resp, err := app.Test(authedRequest(t, req))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []dto.VideoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "video-uploads/xyz", body[0].PublicID)
	assert.Contains(t, body[0].ThumbnailURL, "w_400")
	assert.Contains(t, body[0].ThumbnailURL, "h_225")
	assert.Contains(t, body[0].PreviewURL, "e_preview:duration_15")
	assert.Contains(t, body[0].DownloadURL, "w_1920,h_1080")
}

func TestListVideosEmptyStore(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc, true)

	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
	resp, err := app.Test(authedRequest(t, req))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []dto.VideoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body)
}

func TestListVideosFetchFailed(t *testing.T) {
	svc := &fakeService{listErr: errors.ErrFetchFailed(assert.AnError)}
	app := newTestApp(svc, true)

	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
	resp, err := app.Test(authedRequest(t, req))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to fetch videos", decodeError(t, resp))
}
