package models

import (
	"fmt"
	"strings"
)

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

type LayoutMode int

const (
	SinglePortrait LayoutMode = iota
	SingleLandscape
	DoublePortrait
	DoubleLandscape
	Quadruple
	QuadrupleLandscape
	Custom
)

var layoutModeNames = map[LayoutMode]string{
	SinglePortrait:     "single-portrait",
	SingleLandscape:    "single-landscape",
	DoublePortrait:     "double-portrait",
	DoubleLandscape:    "double-landscape",
	Quadruple:          "quadruple",
	QuadrupleLandscape: "quadruple-landscape",
	Custom:             "custom",
}

func (m LayoutMode) String() string {
	if name, ok := layoutModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("LayoutMode(%d)", int(m))
}

func (m LayoutMode) Orientation() Orientation {
	switch m {
	case SingleLandscape, DoubleLandscape, QuadrupleLandscape:
		return Landscape
	default:
		return Portrait
	}
}

func (m LayoutMode) IsQuadruple() bool {
	return m == Quadruple || m == QuadrupleLandscape
}

func (m LayoutMode) IsDouble() bool {
	return m == DoublePortrait || m == DoubleLandscape
}

func (m LayoutMode) Valid() bool {
	_, ok := layoutModeNames[m]
	return ok
}

func LayoutModes() []LayoutMode {
	return []LayoutMode{
		SinglePortrait, SingleLandscape,
		DoublePortrait, DoubleLandscape,
		Quadruple, QuadrupleLandscape,
		Custom,
	}
}

func ParseLayoutMode(s string) (LayoutMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range layoutModeNames {
		if n == name {
			return mode, nil
		}
	}
	return SinglePortrait, fmt.Errorf("unknown layout mode %q", s)
}
