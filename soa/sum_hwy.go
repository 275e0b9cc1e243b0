package soa

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseSumCoords computes the componentwise sum of a point set (SoA layout).
func BaseSumCoords[T hwy.Floats](xs, ys, zs []T) (sumX, sumY, sumZ T) {
	size := min(len(xs), len(ys), len(zs))

	vSumX := hwy.Zero[T]()
	vSumY := hwy.Zero[T]()
	vSumZ := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vSumX = hwy.Add(vSumX, hwy.Load(xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.Load(ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.Load(zs[offset:]))
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vSumX = hwy.Add(vSumX, hwy.MaskLoad(mask, xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.MaskLoad(mask, ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.MaskLoad(mask, zs[offset:]))
		},
	)

	return hwy.ReduceSum(vSumX), hwy.ReduceSum(vSumY), hwy.ReduceSum(vSumZ)
}

// BaseNormSq computes dst = x*x + y*y + z*z per point (SoA layout).
func BaseNormSq[T hwy.Floats](xs, ys, zs, dst []T) {
	size := min(len(xs), len(ys), len(zs), len(dst))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])
			vz := hwy.Load(zs[offset:])

			hwy.Store(hwy.FMA(vx, vx, hwy.FMA(vy, vy, hwy.Mul(vz, vz))), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])
			vz := hwy.MaskLoad(mask, zs[offset:])

			hwy.MaskStore(mask, hwy.FMA(vx, vx, hwy.FMA(vy, vy, hwy.Mul(vz, vz))), dst[offset:])
		},
	)
}

// BaseDot computes the dot product of two particle field slices.
func BaseDot[T hwy.Floats](xs, ys []T) T {
	size := min(len(xs), len(ys))

	acc := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			acc = hwy.FMA(hwy.Load(xs[offset:]), hwy.Load(ys[offset:]), acc)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			acc = hwy.FMA(hwy.MaskLoad(mask, xs[offset:]), hwy.MaskLoad(mask, ys[offset:]), acc)
		},
	)

	return hwy.ReduceSum(acc)
}
