// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

// UnknownBuildValue stands in for build metadata the linker did not inject.
const UnknownBuildValue = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags "-X main.buildVersion=...".
// Unset values hold [UnknownBuildValue], never the empty string.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo replaces every empty value with [UnknownBuildValue].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// HasVersion reports whether a real version was injected at build time.
func (a AppBuildInfo) HasVersion() bool {
	return isKnown(a.Version)
}

// WriteTo prints the startup banner of a binary.
func (a AppBuildInfo) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orUnknown(a.Version), orUnknown(a.Date), orUnknown(a.Commit))
	return int64(n), err
}

// Known returns v, or "" when v is a placeholder.
func Known(v string) string {
	if !isKnown(v) {
		return ""
	}
	return v
}

func isKnown(v string) bool {
	return v != "" && v != UnknownBuildValue
}

func orUnknown(v string) string {
	if v == "" {
		return UnknownBuildValue
	}
	return v
}
