// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-natours/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	report := info.Report()

	var b strings.Builder
	b.WriteString("Application: natours client\n")
	b.WriteString("Version: ")
	b.WriteString(report.Version)
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(report.Date)
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(report.Commit)
	b.WriteString("\n")
	b.WriteString("Server version: ")
	b.WriteString(valueOrNA(serverVersion))

	return renderPage("ABOUT", overlayBoxStyle.Render(b.String()), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
