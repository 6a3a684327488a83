package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// Upload failures fall into three distinct classes so controllers can tell a
// client mistake (no file, wrong type) from an object-store outage.
var (
	ErrNoFile       = errors.New("no file provided")
	ErrBadFileType  = errors.New("unsupported file type")
	ErrUploadFailed = errors.New("media upload failed")
)

const uploadFolder = "school_portal"

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadImage stores a single image in the S3 bucket and returns its public
// URL. Declared as a variable so handler tests can stub the S3 round-trip.
var UploadImage = uploadImageToS3

func uploadImageToS3(file multipart.File, fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("%w: %s", ErrBadFileType, ext)
	}

	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	region := os.Getenv("AWS_REGION")
	bucket := os.Getenv("S3_BUCKET")
	if accessKey == "" || secretKey == "" || region == "" || bucket == "" {
		return "", fmt.Errorf("%w: AWS credentials or bucket not set in environment", ErrUploadFailed)
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to create AWS session: %v", ErrUploadFailed, err)
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return "", fmt.Errorf("%w: failed to read file: %v", ErrUploadFailed, err)
	}

	key := fmt.Sprintf("%s/%s%s", uploadFolder, uuid.New().String(), ext)
	_, err = s3.New(sess).PutObject(&s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(buf.Bytes()),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key), nil
}

// UploadAll uploads every file header in order and returns the resulting URLs.
func UploadAll(headers []*multipart.FileHeader) ([]string, error) {
	var urls []string
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to open %s: %v", ErrUploadFailed, header.Filename, err)
		}
		url, err := UploadImage(file, header.Filename)
		file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
