package main

import (
	"context"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/drivers/storage"
	"doccare-service/internal/app/services/core/doctors"
	minioStorage "doccare-service/internal/app/services/shared/storage"
	"doccare-service/internal/pkg/utils"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const portraitObjectPrefix = "doctors"

func portraitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portrait",
		Short: "Upload a doctor portrait and point the doctor at it",
		RunE: func(cmd *cobra.Command, args []string) error {
			doctorID, _ := cmd.Flags().GetString("doctor-id")
			file, _ := cmd.Flags().GetString("file")
			log := newLogger()

			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			bucket := internalConfig.Minio.BucketName

			client, dbName := connectMongo()
			defer client.Disconnect(context.Background())
			store := minioStorage.NewMinioStorage(storage.NewMinio(driverConfig, bucket), zap.NewNop())

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			key, err := attachPortrait(ctx, doctors.NewDoctorMongoRepository(client, dbName), store, bucket, doctorID, file)
			if err != nil {
				return err
			}
			log.WithField("object", key).Info("portrait uploaded")
			return nil
		},
	}
	cmd.Flags().String("doctor-id", "", "Hex id of the doctor")
	cmd.Flags().String("file", "", "Path to the image")
	cmd.MarkFlagRequired("doctor-id")
	cmd.MarkFlagRequired("file")
	return cmd
}

func attachPortrait(ctx context.Context, repository contracts.DoctorRepository, store contracts.Storage, bucket, doctorID, path string) (string, error) {
	doctor, err := repository.FindByID(ctx, doctorID)
	if err != nil {
		return "", err
	}
	if doctor == nil {
		return "", fmt.Errorf("doctor %s not found", doctorID)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := utils.GenerateObjectName(portraitObjectPrefix, doctorID, filepath.Base(path))
	key, err := store.UploadFile(ctx, file, info.Size(), contentType, bucket, objectName)
	if err != nil {
		return "", err
	}

	doctor.Image = key
	if _, err := repository.Upsert(ctx, doctor); err != nil {
		return "", err
	}
	return key, nil
}
