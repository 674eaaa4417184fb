package mathutil

// Vec4 is a homogeneous 4-component vector.
type Vec4 [4]float64

// Point4 lifts a 3D point into homogeneous space with w = 1.
func Point4(v Vec3) Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}
