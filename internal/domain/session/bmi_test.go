package session

import "testing"

func fptr(v float64) *float64 { return &v }

func TestBMI(t *testing.T) {
	tests := []struct {
		name   string
		weight *float64
		height *float64
		want   *float64
	}{
		{"typical", fptr(70), fptr(175), fptr(22.9)},
		{"exact integer", fptr(76.5625), fptr(175), fptr(25)},
		{"missing weight", nil, fptr(175), nil},
		{"missing height", fptr(70), nil, nil},
		{"zero height", fptr(70), fptr(0), nil},
		{"negative height", fptr(70), fptr(-175), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BMI(tt.weight, tt.height)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("BMI = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("BMI = %v, want %v", *got, *tt.want)
			}
		})
	}
}

// Pins the documented rounding rule: one decimal, half away from zero.
func TestBMIRounding(t *testing.T) {
	// 90.3125 / 2² = 22.578125 -> 22.6
	if got := BMI(fptr(90.3125), fptr(200)); *got != 22.6 {
		t.Errorf("22.578125 rounded to %v, want 22.6", *got)
	}
	// 90.125 / 2² = 22.53125 -> 22.5
	if got := BMI(fptr(90.125), fptr(200)); *got != 22.5 {
		t.Errorf("22.53125 rounded to %v, want 22.5", *got)
	}
	// 70 / 1.75² = 22.857... -> 22.9
	if got := BMI(fptr(70), fptr(175)); *got != 22.9 {
		t.Errorf("22.857 rounded to %v, want 22.9", *got)
	}
}

func TestRecomputeBMI(t *testing.T) {
	v := Vitals{Weight: fptr(70)}
	v.recomputeBMI()
	if v.BMI != nil {
		t.Error("BMI must be absent without height")
	}
	v.Height = fptr(175)
	v.recomputeBMI()
	if v.BMI == nil || *v.BMI != 22.9 {
		t.Errorf("BMI = %v, want 22.9", v.BMI)
	}
	v.Weight = nil
	v.recomputeBMI()
	if v.BMI != nil {
		t.Error("BMI must go absent when weight is cleared")
	}
}
