// Package picking finds the scene box under a screen position.
package picking

import (
	gomath "math"

	"github.com/Faultbox/cubefold/internal/scene"
	"github.com/Faultbox/cubefold/pkg/math"
)

// Ray is a half-line. Direction is not required to be unit length, so hit
// distances stay comparable after the ray is moved into a box's local space.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenToRay converts pixel coordinates (origin top-left) on a viewport of
// the given size to a world-space ray. invViewProj is the inverse of
// projection × view.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	nearWorld := unproject(invViewProj, math.Vec4{ndcX, ndcY, -1, 1})
	farWorld := unproject(invViewProj, math.Vec4{ndcX, ndcY, 1, 1})

	return Ray{Origin: nearWorld, Direction: farWorld.Sub(nearWorld).Normalize()}
}

func unproject(invViewProj math.Mat4, ndc math.Vec4) math.Vec3 {
	p := invViewProj.MulVec4(ndc)
	if p[3] != 0 {
		p[0] /= p[3]
		p[1] /= p[3]
		p[2] /= p[3]
	}
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// Transform moves the ray by m.
func (r Ray) Transform(m math.Mat4) Ray {
	return Ray{
		Origin:    m.TransformVec3(r.Origin),
		Direction: m.TransformDirection(r.Direction),
	}
}

// At returns the point at parameter t.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectAABB tests the ray against the box lo..hi with the slab method.
// It returns the entry distance, or the exit distance if the ray starts
// inside.
func (r Ray) IntersectAABB(lo, hi math.Vec3) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	boxMin := [3]float32{lo.X, lo.Y, lo.Z}
	boxMax := [3]float32{hi.X, hi.Y, hi.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < boxMin[axis] || origin[axis] > boxMax[axis] {
				return 0, false
			}
			continue
		}
		t1 := (boxMin[axis] - origin[axis]) / dir[axis]
		t2 := (boxMax[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

var (
	unitMin = math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}
	unitMax = math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
)

// PickBox returns the index of the nearest box the ray hits. Boxes are
// tested in their own space, so rotated boxes pick exactly.
func PickBox(r Ray, boxes []scene.Box) (index int, ok bool) {
	best := float32(gomath.MaxFloat32)
	index = -1
	for i, b := range boxes {
		model := b.Model.Mul(math.Scale(b.Size.X, b.Size.Y, b.Size.Z))
		local := r.Transform(model.Inverse())
		if t, hit := local.IntersectAABB(unitMin, unitMax); hit && t < best {
			best = t
			index = i
		}
	}
	return index, index >= 0
}
