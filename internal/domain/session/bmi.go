package session

import "math"

// BMI computes the body-mass index from weight in kilograms and height in
// centimeters: weight / (height/100)², rounded half away from zero to one
// decimal place. It returns nil unless both inputs are present and height is
// positive; a nil result means the index is absent, never stale.
func BMI(weight, height *float64) *float64 {
	if weight == nil || height == nil || *height <= 0 {
		return nil
	}
	m := *height / 100
	v := math.Round(*weight/(m*m)*10) / 10
	return &v
}

// recomputeBMI re-derives the index from the current weight and height. It
// must run after every mutation of either input.
func (v *Vitals) recomputeBMI() {
	v.BMI = BMI(v.Weight, v.Height)
}
