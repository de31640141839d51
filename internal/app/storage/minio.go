package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOClient хранит архив сгенерированных смет (PDF)
type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOClient создает клиент для MinIO
func NewMinIOClient(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Создаем bucket если не существует
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &MinIOClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// EstimateObjectName - имя объекта для сметы заказа (фиксированное, перезаписывается)
func EstimateObjectName(orderID string) string {
	return fmt.Sprintf("estimate_%s.pdf", orderID)
}

// UploadEstimate кладет PDF сметы в архив и возвращает имя объекта
func (m *MinIOClient) UploadEstimate(ctx context.Context, orderID string, pdfData []byte) (string, error) {
	objectName := EstimateObjectName(orderID)

	reader := bytes.NewReader(pdfData)
	_, err := m.client.PutObject(ctx, m.bucketName, objectName, reader, int64(len(pdfData)), minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload estimate: %w", err)
	}

	logrus.Infof("Estimate %s uploaded successfully", objectName)
	return objectName, nil
}

// GetFileURL возвращает временный URL для доступа к файлу (1 час)
func (m *MinIOClient) GetFileURL(ctx context.Context, filename string) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucketName, filename, time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}

// FileExists проверяет существует ли файл
func (m *MinIOClient) FileExists(ctx context.Context, filename string) (bool, error) {
	_, err := m.client.StatObject(ctx, m.bucketName, filename, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to check file: %w", err)
	}

	return true, nil
}
