// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo is the version, date and commit the client binary was built
// with, injected with -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.version
}

func (a AppBuildInfo) BuildDate() string {
	return a.date
}

func (a AppBuildInfo) BuildCommit() string {
	return a.commit
}

// String formats the build as "version (commit, date)", leaving out the
// parts that are not set.
func (a AppBuildInfo) String() string {
	version := a.version
	if version == "" {
		version = "dev"
	}

	var extra []string
	if a.commit != "" {
		extra = append(extra, a.commit)
	}
	if a.date != "" {
		extra = append(extra, a.date)
	}
	if len(extra) == 0 {
		return version
	}
	return version + " (" + strings.Join(extra, ", ") + ")"
}
