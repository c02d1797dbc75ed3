// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfoUnknown stands in for build metadata that was not injected at
// link time.
const BuildInfoUnknown = "N/A"

// AppBuildInfo is the version, date and commit stamped into the server
// binary through -ldflags.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns build info with empty values replaced by
// [BuildInfoUnknown].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

// Known reports whether a release version was injected.
func (a AppBuildInfo) Known() bool {
	return a.version != BuildInfoUnknown
}

// String renders the three lines printed on server start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.version, a.date, a.commit)
}

func orUnknown(value string) string {
	if value == "" {
		return BuildInfoUnknown
	}
	return value
}
