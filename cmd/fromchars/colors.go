package main

import (
	"fmt"

	"github.com/fatih/color"
)

type palette struct {
	Input func(string, ...any) string
	Bits  func(string, ...any) string
	Value func(string, ...any) string
	OK    func(string, ...any) string
	Err   func(string, ...any) string
}

func newPalette() *palette {
	color.NoColor = false
	return &palette{
		Input: color.CyanString,
		Bits:  color.RGB(128, 128, 128).SprintfFunc(),
		Value: color.RGB(128, 216, 236).SprintfFunc(),
		OK:    color.GreenString,
		Err:   color.RedString,
	}
}

func plainPalette() *palette {
	return &palette{
		Input: fmt.Sprintf,
		Bits:  fmt.Sprintf,
		Value: fmt.Sprintf,
		OK:    fmt.Sprintf,
		Err:   fmt.Sprintf,
	}
}
