// internal/services/storage_service.go
package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/atelier-backend/internal/config"
	"github.com/javajoker/atelier-backend/internal/store"
)

// ErrFileTooLarge is returned when an upload exceeds MAX_UPLOAD_MB.
var ErrFileTooLarge = errors.New("file exceeds maximum upload size")

// StorageService ingests uploaded images. Files land in the local uploads
// directory unless AWS credentials are configured, in which case they go
// to S3 under the same key.
type StorageService struct {
	s3Client s3iface.S3API
	config   *config.Config
	now      func() time.Time
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`

	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if !config.UsesS3() {
		return &StorageService{config: config, now: time.Now}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
		now:      time.Now,
	}, nil
}

// Ingest stores the bytes verbatim under "<unix millis>-<originalName>"
// and returns the public URL. The name is not sanitized and the content
// type is not checked. PNG and JPEG uploads also get a downscaled JPEG
// thumbnail when THUMBNAIL_WIDTH is set; a thumbnail failure never fails
// the upload.
func (s *StorageService) Ingest(r io.Reader, originalName string) (*UploadResult, error) {
	fileBytes, err := s.readLimited(r)
	if err != nil {
		return nil, err
	}

	filename := s.generateFileName(originalName)
	contentType := http.DetectContentType(fileBytes)

	url, err := s.put(filename, fileBytes, contentType)
	if err != nil {
		return nil, err
	}

	result := &UploadResult{
		URL:      url,
		Key:      filename,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}

	if width := s.config.Storage.ThumbnailWidth; width > 0 && isResizable(contentType) {
		result.ThumbnailURL = s.storeThumbnail(fileBytes, filename, width)
	}

	return result, nil
}

func (s *StorageService) put(key string, fileBytes []byte, contentType string) (string, error) {
	if s.s3Client != nil {
		return s.uploadToS3(fileBytes, key, contentType)
	}
	return s.uploadToLocal(fileBytes, key)
}

func (s *StorageService) storeThumbnail(fileBytes []byte, filename string, width int) string {
	thumbBytes, err := makeThumbnail(fileBytes, uint(width))
	if err != nil {
		logrus.WithError(err).WithField("file", filename).Warn("Failed to create thumbnail")
		return ""
	}

	key := thumbnailKey(filename)
	url, err := s.put(key, thumbBytes, "image/jpeg")
	if err != nil {
		logrus.WithError(err).WithField("file", key).Warn("Failed to store thumbnail")
		return ""
	}
	return url
}

func (s *StorageService) readLimited(r io.Reader) ([]byte, error) {
	maxBytes := int64(s.config.Storage.MaxUploadMB) * 1024 * 1024
	if maxBytes <= 0 {
		fileBytes, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return fileBytes, nil
	}

	fileBytes, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(fileBytes)) > maxBytes {
		return nil, fmt.Errorf("%w: limit is %d MB", ErrFileTooLarge, s.config.Storage.MaxUploadMB)
	}
	return fileBytes, nil
}

func (s *StorageService) uploadToS3(fileBytes []byte, key, contentType string) (string, error) {
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	}

	if _, err := s.s3Client.PutObject(params); err != nil {
		return "", fmt.Errorf("%w: s3 upload: %w", store.ErrWrite, err)
	}

	logrus.WithFields(logrus.Fields{
		"bucket": s.config.AWS.S3Bucket,
		"key":    key,
		"size":   len(fileBytes),
	}).Info("Asset uploaded to S3")

	return s.getS3URL(key), nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key string) (string, error) {
	target := filepath.Join(s.config.Storage.UploadsDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("%w: create uploads dir: %w", store.ErrWrite, err)
	}

	if err := os.WriteFile(target, fileBytes, 0o644); err != nil {
		return "", fmt.Errorf("%w: write upload: %w", store.ErrWrite, err)
	}

	logrus.WithFields(logrus.Fields{
		"file": key,
		"size": len(fileBytes),
	}).Info("Asset stored locally")

	return s.localURL(key), nil
}

func (s *StorageService) generateFileName(originalName string) string {
	return fmt.Sprintf("%d-%s", s.now().UnixMilli(), originalName)
}

func (s *StorageService) localURL(filename string) string {
	prefix := "/" + strings.Trim(s.config.Storage.UploadsURLPrefix, "/")
	return path.Join(prefix, filename)
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.config.AWS.CloudFrontURL, "/"), key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}
