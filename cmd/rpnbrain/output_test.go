package main

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestFormatResult(t *testing.T) {
	list := map[string]struct {
		value float64
		ok    bool
	}{
		"3":     {3, true},
		"-0.25": {-0.25, true},
		"+Inf":  {math.Inf(1), true},
		"NaN":   {math.NaN(), true},
		"-":     {7, false},
	}
	for expected, tc := range list {
		if actual := formatResult(tc.value, tc.ok); actual != expected {
			t.Errorf("Actual: %#v; Expected: %#v", actual, expected)
		}
	}
}

func TestStackLines(t *testing.T) {
	list := map[string]struct {
		input    []string
		expected []string
	}{
		"empty":  {nil, []string{}},
		"one":    {[]string{"5"}, []string{"0: 5"}},
		"ragged": {
			[]string{"100", "2.5", "×"},
			[]string{"2: 100", "1: 2.5", "0:   ×"},
		},
		"wide": {
			[]string{"１", "2", "3", "4", "5", "6", "7", "8", "9", "10", "+"},
			[]string{"10: １", " 9:  2", " 8:  3", " 7:  4", " 6:  5", " 5:  6", " 4:  7", " 3:  8", " 2:  9", " 1: 10", " 0:  +"},
		},
	}
	for name, tc := range list {
		if actual := stackLines(tc.input); !reflect.DeepEqual(actual, tc.expected) {
			t.Errorf("Case: %s; Actual: %#v; Expected: %#v", name, actual, tc.expected)
		}
	}
}

func TestPrinterWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, false)
	p.result(2.5, true)
	p.result(0, false)
	p.fail(errors.New("boom"))

	expected := "2.5\n-\nerror: boom\n"
	if actual := buf.String(); actual != expected {
		t.Errorf("Actual: %#v; Expected: %#v", actual, expected)
	}
}

func TestPrinterWithColor(t *testing.T) {
	var buf bytes.Buffer
	newPrinter(&buf, true).result(2.5, true)
	if actual := buf.String(); !bytes.Contains(buf.Bytes(), []byte("\x1b[")) || !bytes.Contains(buf.Bytes(), []byte("2.5")) {
		t.Errorf("Actual: %#v; Expected: colored 2.5", actual)
	}
}
