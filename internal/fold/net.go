package fold

import "github.com/Faultbox/cubefold/pkg/math"

// DefaultNet returns the face table of a cross-shaped net with panels of the
// given edge length:
//
//	  1
//	3 0 2
//	  4
//	  5
func DefaultNet(size float32) []FaceConfig {
	h := size / 2
	return []FaceConfig{
		{RestPosition: math.Vec3{}, PivotOffset: math.Vec3{}, Axis: AxisX},
		{RestPosition: math.Vec3{Y: h}, PivotOffset: math.Vec3{Y: -h}, Axis: AxisX},
		{RestPosition: math.Vec3{X: h}, PivotOffset: math.Vec3{X: -h}, Axis: AxisY},
		{RestPosition: math.Vec3{X: -h}, PivotOffset: math.Vec3{X: h}, Axis: AxisY},
		{RestPosition: math.Vec3{Y: -h}, PivotOffset: math.Vec3{Y: h}, Axis: AxisX},
		{RestPosition: math.Vec3{Y: -size - h}, PivotOffset: math.Vec3{Y: h}, Axis: AxisX},
	}
}
