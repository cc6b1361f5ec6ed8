// Package rpmfile reads RPM headers natively with go-rpmutils. It backs the
// inspect command, which works without the rpm tool installed; the policy
// analyzers deliberately keep using the rpm tool so their findings match what
// the distribution tooling reports.
package rpmfile

import (
	"fmt"
	"os"

	"github.com/sassoftware/go-rpmutils"
)

// PackageInfo is the header summary shown by the inspect command.
type PackageInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Release   string   `json:"release"`
	Arch      string   `json:"arch"`
	Summary   string   `json:"summary,omitempty"`
	License   string   `json:"license,omitempty"`
	URL       string   `json:"url,omitempty"`
	SourceRPM string   `json:"source_rpm,omitempty"`
	Files     []string `json:"files,omitempty"`
}

// Read parses the RPM lead and header of the package at path.
func Read(path string) (*PackageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rpm, err := rpmutils.ReadRpm(f)
	if err != nil {
		return nil, fmt.Errorf("reading RPM header: %w", err)
	}

	nevra, err := rpm.Header.GetNEVRA()
	if err != nil {
		return nil, fmt.Errorf("reading package NEVRA: %w", err)
	}

	info := &PackageInfo{
		Name:    nevra.Name,
		Version: nevra.Version,
		Release: nevra.Release,
		Arch:    nevra.Arch,
	}

	// Optional tags; absence is normal for minimal packages.
	info.Summary, _ = rpm.Header.GetString(rpmutils.SUMMARY)
	info.License, _ = rpm.Header.GetString(rpmutils.LICENSE)
	info.URL, _ = rpm.Header.GetString(rpmutils.URL)
	info.SourceRPM, _ = rpm.Header.GetString(rpmutils.SOURCERPM)

	if files, err := rpm.Header.GetFiles(); err == nil {
		for _, fi := range files {
			info.Files = append(info.Files, fi.Name())
		}
	}

	return info, nil
}
