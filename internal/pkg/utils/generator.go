package utils

import (
	"doccare-service/internal/pkg/constvars"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateJobRequestID(jobName string) string {
	return fmt.Sprintf("%sJOB_%s_%s", constvars.REQUEST_ID_PREFIX, strings.ToUpper(jobName), uuid.New().String())
}

func GenerateLockValue() string {
	return uuid.New().String()
}

func GenerateEventID() string {
	return uuid.New().String()
}

// GenerateObjectName builds a storage object key under prefix, keeping the
// original file extension.
func GenerateObjectName(prefix, ownerID, fileName string) string {
	timestamp := time.Now().UTC().Format("20060102_150405.000000000")
	return path.Join(prefix, fmt.Sprintf("%s_%s%s", ownerID, timestamp, path.Ext(fileName)))
}
