package mediaservice

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"time"

	"cloud-showcase/internal/pkg/config"
)

const defaultUploadBase = "https://api.cloudinary.com/v1_1"

// videoTransformation, upload sırasında uygulanan sıkıştırma.
// Cevaptaki bytes alanı bu transform sonrası boyuttur.
const videoTransformation = "f_mp4,q_auto"

// CloudinaryClient, medya servisinin upload API'sine imzalı istek atan
// HTTP client. SDK yok; imza kuralı: sıralı k=v parametreleri + secret,
// SHA-1 hex.
type CloudinaryClient struct {
	URLBuilder

	apiKey     string
	apiSecret  string
	uploadBase string
	httpClient *http.Client
	now        func() time.Time
}

func NewCloudinaryClient(cfg config.CloudinaryConfig) *CloudinaryClient {
	return &CloudinaryClient{
		URLBuilder: URLBuilder{CloudName: cfg.CloudName},
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		uploadBase: defaultUploadBase,
		httpClient: &http.Client{},
		now:        time.Now,
	}
}

func (c *CloudinaryClient) UploadVideo(ctx context.Context, r io.Reader, opts UploadOptions) (*UploadResult, error) {
	params := map[string]string{
		"folder":         opts.Folder,
		"transformation": videoTransformation,
	}
	return c.upload(ctx, "video", r, params)
}

func (c *CloudinaryClient) UploadImage(ctx context.Context, r io.Reader, opts UploadOptions) (*UploadResult, error) {
	params := map[string]string{
		"folder": opts.Folder,
	}
	return c.upload(ctx, "image", r, params)
}

func (c *CloudinaryClient) upload(ctx context.Context, resourceType string, r io.Reader, params map[string]string) (*UploadResult, error) {
	params["timestamp"] = strconv.FormatInt(c.now().Unix(), 10)
	signature := signParams(params, c.apiSecret)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for k, v := range params {
		if err := writer.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("form alanı yazılamadı: %w", err)
		}
	}
	if err := writer.WriteField("api_key", c.apiKey); err != nil {
		return nil, err
	}
	if err := writer.WriteField("signature", signature); err != nil {
		return nil, err
	}

	part, err := writer.CreateFormFile("file", "file")
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("dosya kopyalanamadı: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/%s/upload", c.uploadBase, c.CloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload isteği başarısız: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, fmt.Errorf("upload rejected (%d): %s", resp.StatusCode, apiErr.Error.Message)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("upload cevabı çözülemedi: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("upload cevabında public_id yok")
	}
	return &result, nil
}

// signParams, api_key ve file dışındaki parametreleri alfabetik sırada
// k=v&k=v olarak birleştirip secret ile SHA-1'ler.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(params[k])
	}
	buf.WriteString(secret)

	sum := sha1.Sum(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
