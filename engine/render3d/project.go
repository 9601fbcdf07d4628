package render3d

import "github.com/go-gl/mathgl/mgl64"

// CameraDistance sets the perspective strength; larger values flatten
// the projection toward orthographic.
const CameraDistance = 800.0

// Point3D is a height-mapped grid vertex in object space, centered on
// the canvas midpoint, before rotation.
type Point3D struct {
	X, Y, Z      float64
	Iterations   int
	GridX, GridY int
}

// ProjectedPoint is a Point3D after rotation and perspective
// projection into screen space. Scale is the foreshortening factor
// applied at the point.
type ProjectedPoint struct {
	X, Y, Z      float64
	Iterations   int
	Scale        float64
	GridX, GridY int
}

// RotationMatrix composes the fixed rotation order: pitch around X,
// then roll around Y, then yaw around Z. Angles are in degrees.
func RotationMatrix(pitchDeg, rollDeg, yawDeg float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(mgl64.DegToRad(yawDeg)).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(rollDeg))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(pitchDeg)))
}

// Project rotates a point and applies perspective projection. Screen
// coordinates land relative to the canvas center.
func Project(p Point3D, rot mgl64.Mat4, screenW, screenH int) ProjectedPoint {
	v := rot.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	denom := CameraDistance + v.Z()
	if denom < 1 {
		denom = 1 // points behind the camera clamp instead of flipping
	}
	persp := CameraDistance / denom
	return ProjectedPoint{
		X:          v.X()*persp + float64(screenW)/2,
		Y:          v.Y()*persp + float64(screenH)/2,
		Z:          v.Z(),
		Iterations: p.Iterations,
		Scale:      persp,
		GridX:      p.GridX,
		GridY:      p.GridY,
	}
}
