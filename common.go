package tec

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	mkerr      func(string) error                     = errors.New
	itoa       func(int) string                       = strconv.Itoa
	fmtUint    func(uint64, int) string               = strconv.FormatUint
	fmtInt     func(int64, int) string                = strconv.FormatInt
	pint       func(string, int, int) (int64, error)  = strconv.ParseInt
	puint      func(string, int, int) (uint64, error) = strconv.ParseUint
	lc         func(string) string                    = strings.ToLower
	split      func(string, string) []string          = strings.Split
	stridxb    func(string, byte) int                 = strings.IndexByte
	replaceAll func(string, string, string) string    = strings.ReplaceAll
	hasSfx     func(string, string) bool              = strings.HasSuffix
	trimPfx    func(string, string) string            = strings.TrimPrefix
	trimSfx    func(string, string) string            = strings.TrimSuffix
	cntns      func(string, string) bool              = strings.Contains
	strrpt     func(string, int) string               = strings.Repeat
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
sat32 and sat64 convert a float to an unsigned integer, truncating
toward zero and saturating at the bounds of the target type. A plain
conversion of an out-of-range float is implementation-defined in Go.
*/
func sat32(f float32) uint32 {
	switch {
	case math.IsNaN(float64(f)) || f <= 0:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(f)
}

func sat64(f float64) uint64 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	}
	return uint64(f)
}

// padLeft zero-pads s to width w.
func padLeft(s string, w int) string {
	if n := w - len(s); n > 0 {
		s = strrpt("0", n) + s
	}
	return s
}
