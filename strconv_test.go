// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f Fixed
		s string
	}{
		{Zero, "0"},
		{One, "1"},
		{FromInt(-5), "-5"},
		{Half, "0.5"},
		{24576, "1.5"},
		{-40960, "-2.5"},
		{54613, "3.33331298828125"},
		{-54613, "-3.33331298828125"},
		{SmallestPositive, "0.00006103515625"},
		{SmallestNegative, "-0.00006103515625"},
		{Max, "131071.99993896484375"},
		{Min, "-131072"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, test.f.String())
			a.Equal(test.s, fmt.Sprint(test.f))
			if f, err := FromString(test.s); a.NoError(err) {
				a.Equal(test.f, f)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		format string
		f      Fixed
		s      string
	}{
		{"%v", Half, "0.5"},
		{"%s", Half, "0.5"},
		{"%+v", Half, "0.5 {8192}"},
		{"%f", 54613, "3.33331298828125"},
		{"%.2f", 54613, "3.33"},
		{"%.0f", -40960, "-3"},
		{"%.3f", One, "1.000"},
		{"%d", -54613, "-3"},
		{"%x", FromInt(3), "c000"},
		{"%X", FromInt(3), "C000"},
		{"%x", SmallestNegative, "ffffffff"},
		{"%X", Min, "80000000"},
		{"%6s", Half, "   0.5"},
		{"%-6s|", Half, "0.5   |"},
		{"%q", Half, "%!q(fixed.Fixed=0.5)"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, fmt.Sprintf(test.format, test.f))
		})
	}
}

func TestFromString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		f   Fixed
		err string
	}{
		{"0", Zero, ""},
		{"-0", Zero, ""},
		{"3", 49152, ""},
		{" 1.5 ", 24576, ""},
		{`"1.5"`, 24576, ""},
		{`  " -2.5 "  `, -40960, ""},
		{"1e2", FromInt(100), ""},
		{"0.00003", Zero, ""},
		{"0.0000305176", SmallestPositive, ""},
		{"-0.0000305176", SmallestNegative, ""},
		{"131071.99994", Max, ""},
		{"-131072.00003", Min, ""},
		{"131071.99997", Zero, "value out of range"},
		{"131072", Zero, "value out of range"},
		{"-131073", Zero, "value out of range"},
		{"1000000", Zero, "value out of range"},
		{"1e100000000", Zero, "value out of range"},
		{"-1e100000000", Zero, "value out of range"},
		{"1e-100000000", Zero, ""},
		{"-1e-100000000", Zero, ""},
		{"0e100000000", Zero, ""},
		{"0.0000009", Zero, ""},
		{"1234567e-1", 2022714573, ""},
		{"", Zero, "empty input"},
		{`"  "`, Zero, "empty input"},
		{`"`, Zero, "unterminated quote"},
		{`"1.5`, Zero, "unterminated quote"},
		{"abc", Zero, "parsing failed"},
		{"1.2.3", Zero, "parsing failed"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := FromString(test.s)
			if len(test.err) > 0 {
				if a.Error(err) {
					a.Contains(err.Error(), test.err)
					a.True(Error.Has(err))
				}
				a.Panics(func() {
					MustFromString(test.s)
				})
			} else if a.NoError(err) {
				a.Equal(test.f, f)
				a.Equal(test.f, MustFromString(test.s))
			}
		})
	}
}

func TestJSON(t *testing.T) {
	a := assert.New(t)
	defer func(mode int) {
		JSONMode = mode
	}(JSONMode)
	tests := []struct {
		mode int
		f    Fixed
		data string
	}{
		{JSONModeString, Half, `"0.5"`},
		{JSONModeString, Min, `"-131072"`},
		{JSONModeFloat, Half, `0.5`},
		{JSONModeFloat, -54613, `-3.33331298828125`},
		{JSONModeRaw, Half, `{"raw":8192}`},
		{JSONModeRaw, Min, `{"raw":-2147483648}`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			JSONMode = test.mode
			data, err := json.Marshal(test.f)
			if a.NoError(err) {
				a.Equal(test.data, string(data))
			}
			var f Fixed
			if a.NoError(json.Unmarshal([]byte(test.data), &f)) {
				a.Equal(test.f, f)
			}
		})
	}
}

func TestJSONStruct(t *testing.T) {
	a := assert.New(t)
	type load struct {
		Avg  Fixed  `json:"avg"`
		Prev *Fixed `json:"prev"`
	}
	var l load
	if a.NoError(json.Unmarshal([]byte(`{"avg":"1.5","prev":null}`), &l)) {
		a.Equal(Fixed(24576), l.Avg)
		a.Nil(l.Prev)
	}
	if a.NoError(json.Unmarshal([]byte(`{"avg":1e-100000000}`), &l)) {
		a.Equal(Zero, l.Avg)
	}
	err := json.Unmarshal([]byte(`{"avg":1e100000000}`), &l)
	if a.Error(err) {
		a.Contains(err.Error(), "value out of range")
	}
	a.Error(json.Unmarshal([]byte(`{"avg":{"raw":"x"}}`), &l))
	a.Error(json.Unmarshal([]byte(`{"avg":true}`), &l))
}

func TestText(t *testing.T) {
	a := assert.New(t)
	data, err := Half.MarshalText()
	if a.NoError(err) {
		a.Equal("0.5", string(data))
	}
	var f Fixed
	if a.NoError(f.UnmarshalText([]byte("-2.5"))) {
		a.Equal(Fixed(-40960), f)
	}
	a.Error(f.UnmarshalText([]byte("")))
	a.Error(f.UnmarshalText([]byte("1e100000000")))
}

func TestStringRoundTrip(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 10000; i++ {
		f := FromRaw(rnd.Int31() - rnd.Int31())
		parsed, err := FromString(f.String())
		if !a.NoError(err) || !a.Equal(f, parsed) {
			break
		}
	}
}
