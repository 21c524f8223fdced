// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"1234.5678"`
	JSONModeString = iota
	// JSONModeFloat marshals values as numbers, like `1234.5678`.
	JSONModeFloat
	// JSONModeRaw marshals the internal representation, like `{"raw":24576}`.
	JSONModeRaw
)

var (
	scaleDecimal = decimal.New(Scale, 0)
	maxDecimal   = decimal.New(int64(Max), 0)
	minDecimal   = decimal.New(int64(Min), 0)
)

type rawJSON struct {
	Raw int32 `json:"raw"`
}

// FromString parses a decimal string, like "-12.375" or "1.5e3", into a value.
// The string may be quoted and may have leading and trailing spaces.
// The result is rounded to the nearest representable value, halves away from zero.
func FromString(s string) (Fixed, error) {
	s, err := prepareString(s)
	if err != nil {
		return Zero, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, Error.New("parsing failed: %v", err)
	}
	return FromDecimal(d)
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Fixed {
	f, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

func prepareString(s string) (string, error) {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
		if len(s) == 0 || s[len(s)-1] != '"' {
			return "", Error.New("unterminated quote")
		}
		s = strings.TrimFunc(s[:len(s)-1], unicode.IsSpace)
	}
	if len(s) == 0 {
		return "", Error.New("empty input")
	}
	return s, nil
}

// String returns the exact decimal representation of f.
func (f Fixed) String() string {
	return f.Decimal().String()
}

// GoString returns debug string representation.
func (f Fixed) GoString() string {
	return f.String() + fmt.Sprintf(" {%d}", int32(f))
}

// Format implements fmt.Formatter.
// Supported verbs are:
//	%v, %s - the exact decimal value, %+v prints GoString;
//	%f     - a decimal value, rounded to the precision, if given;
//	%d     - the integer part;
//	%x, %X - the raw bits as an unsigned 32-bit number.
func (f Fixed) Format(fs fmt.State, c rune) {
	var s string
	switch c {
	case 'v':
		if fs.Flag('+') {
			s = f.GoString()
		} else {
			s = f.String()
		}
	case 's':
		s = f.String()
	case 'f', 'F':
		if prec, ok := fs.Precision(); ok {
			s = f.Decimal().StringFixed(int32(prec))
		} else {
			s = f.String()
		}
	case 'd':
		s = strconv.FormatInt(int64(f.Int()), 10)
	case 'x':
		s = strconv.FormatUint(uint64(uint32(f)), 16)
	case 'X':
		s = strings.ToUpper(strconv.FormatUint(uint64(uint32(f)), 16))
	default:
		s = "%!" + string(c) + "(fixed.Fixed=" + f.String() + ")"
	}
	writePadded(fs, s)
}

func writePadded(fs fmt.State, s string) {
	w, ok := fs.Width()
	if !ok || w <= len(s) {
		io.WriteString(fs, s)
		return
	}
	pad := strings.Repeat(" ", w-len(s))
	if fs.Flag('-') {
		io.WriteString(fs, s+pad)
	} else {
		io.WriteString(fs, pad+s)
	}
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (f Fixed) MarshalJSON() ([]byte, error) {
	switch JSONMode {
	case JSONModeFloat:
		return []byte(f.String()), nil
	case JSONModeRaw:
		return json.Marshal(rawJSON{Raw: int32(f)})
	default:
		return []byte(strconv.Quote(f.String())), nil
	}
}

// UnmarshalJSON unmarshals a string, a number, or an object with a raw value.
func (f *Fixed) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return Error.New("empty json")
	}
	if string(data) == "null" {
		return nil
	}
	if data[0] == '{' {
		var r rawJSON
		if err := json.Unmarshal(data, &r); err != nil {
			return Error.Wrap(err)
		}
		*f = FromRaw(r.Raw)
		return nil
	}
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Fixed) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fixed) UnmarshalText(data []byte) error {
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*f = value
	return nil
}
