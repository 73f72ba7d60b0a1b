package ridge

import (
	"testing"

	"github.com/plotkit/plotkit/pkg/errors"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Options
		wantErr bool
	}{
		{name: "empty", in: "", want: Options{}},
		{name: "single", in: "g", want: Options{Grid: true}},
		{name: "all", in: "bcgszd", want: Options{
			Blank: true, Crop: true, Grid: true, Slalom: true, Squeeze: true, Dots: true,
		}},
		{name: "order independent", in: "zg", want: Options{Grid: true, Squeeze: true}},
		{name: "repeated", in: "ggg", want: Options{Grid: true}},
		{name: "unknown letter", in: "gx", wantErr: true},
		{name: "uppercase", in: "G", wantErr: true},
		{name: "space", in: "g z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidOption) {
					t.Fatalf("ParseOptions(%q) error = %v, want INVALID_OPTION", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOptions(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseOptions(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePlotType(t *testing.T) {
	valid := map[string]PlotType{
		"":         Plot,
		"plot":     Plot,
		"semilogx": SemilogX,
		"semilogy": SemilogY,
		"loglog":   LogLog,
	}
	for in, want := range valid {
		got, err := ParsePlotType(in)
		if err != nil {
			t.Errorf("ParsePlotType(%q) error = %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePlotType(%q) = %v, want %v", in, got, want)
		}
	}

	for _, in := range []string{"log", "linear", "Plot"} {
		if _, err := ParsePlotType(in); !errors.Is(err, errors.ErrCodeInvalidOption) {
			t.Errorf("ParsePlotType(%q) error = %v, want INVALID_OPTION", in, err)
		}
	}
}

func TestPlotTypeScales(t *testing.T) {
	tests := []struct {
		t          PlotType
		logX, logY bool
	}{
		{Plot, false, false},
		{SemilogX, true, false},
		{SemilogY, false, true},
		{LogLog, true, true},
	}
	for _, tt := range tests {
		if tt.t.logX() != tt.logX || tt.t.logY() != tt.logY {
			t.Errorf("%v: logX=%v logY=%v, want %v %v",
				tt.t, tt.t.logX(), tt.t.logY(), tt.logX, tt.logY)
		}
	}
}
