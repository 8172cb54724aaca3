// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-flights/internal/interfaces/global"
	"strconv"
	"strings"
)

var ConfVersion, _ = newVersion(global.ConfigVersion)

func checkPort(port uint) *ValidResult {
	if port == 0 {
		return ValidFail(errors.New("port must be greater than zero"))
	}
	if port > 65535 {
		return ValidFail(errors.New("port must be less than 65535"))
	}
	if port < 1024 {
		return ValidFail(fmt.Errorf("the %d port may have a special usage, use it with caution", port))
	}
	return ValidPass()
}

type checkVersionResult int

const (
	AllMatch checkVersionResult = iota
	MajorUnmatch
	MinorUnmatch
	PatchUnmatch
)

// Version 形如 major.minor.patch 的配置版本号
type Version struct {
	parts   [3]int
	version string
}

func newVersion(version string) (*Version, error) {
	fields := strings.Split(version, ".")
	if len(fields) != 3 {
		return nil, fmt.Errorf("invalid version string %q", version)
	}
	v := &Version{version: version}
	for i, field := range fields {
		number, err := strconv.Atoi(field)
		if err != nil || number < 0 {
			return nil, fmt.Errorf("invalid version string %q", version)
		}
		v.parts[i] = number
	}
	return v, nil
}

func (v *Version) checkVersion(version *Version) checkVersionResult {
	switch {
	case v.parts[0] != version.parts[0]:
		return MajorUnmatch
	case v.parts[1] != version.parts[1]:
		return MinorUnmatch
	case v.parts[2] != version.parts[2]:
		return PatchUnmatch
	default:
		return AllMatch
	}
}

func (v *Version) String() string {
	return v.version
}
