// Package storage holds the object-storage adapter complaint images are
// delegated to. Only the resulting URIs are ever persisted locally.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const uploadFolder = "hostel-complaints"

// CloudinaryStore uploads images to Cloudinary using the unsigned upload
// API: a single multipart POST per file against
// https://api.cloudinary.com/v1_1/<cloud>/image/upload.
type CloudinaryStore struct {
	cloudName    string
	uploadPreset string
	client       *http.Client
}

func NewCloudinaryStore(cloudName, uploadPreset string) *CloudinaryStore {
	return &CloudinaryStore{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends one image and returns its public URI.
func (s *CloudinaryStore) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("cloudinary: build request: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("cloudinary: read image: %w", err)
	}
	if err := mw.WriteField("upload_preset", s.uploadPreset); err != nil {
		return "", fmt.Errorf("cloudinary: build request: %w", err)
	}
	if err := mw.WriteField("folder", uploadFolder); err != nil {
		return "", fmt.Errorf("cloudinary: build request: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("cloudinary: build request: %w", err)
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("cloudinary: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary: upload: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("cloudinary: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary: upload failed (%d): %s", resp.StatusCode, parsed.Error.Message)
	}
	return parsed.SecureURL, nil
}
