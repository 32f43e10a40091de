// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package models

import "fmt"

// AppBuildInfo carries build-time metadata stamped into the agent binary.
//
// Values are injected through linker flags in CI and surfaced by the
// health endpoint and the dashboard header, so a supervisor can tell
// which agent build a terminal runs.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty fields are normalized to "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	const na = "N/A"
	if buildVersion == "" {
		buildVersion = na
	}
	if buildDate == "" {
		buildDate = na
	}
	if buildCommit == "" {
		buildCommit = na
	}
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String implements [fmt.Stringer] for version banners.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.buildVersion, a.buildCommit, a.buildDate)
}
