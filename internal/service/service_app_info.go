package service

import (
	"context"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/models"
)

// appInfoService reports the build the server process was started from.
type appInfoService struct {
	build models.AppBuildInfo
}

// NewAppInfoService rejects a build without a version and logs the build
// once.
func NewAppInfoService(build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if build.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	report := build.Report()
	logger.Info().
		Str("version", report.Version).
		Str("date", report.Date).
		Str("commit", report.Commit).
		Msg("serving build")

	return &appInfoService{build: build}, nil
}

func (s *appInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return s.build
}
