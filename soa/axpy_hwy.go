package soa

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseAxpy computes dst = alpha*x + y over particle field slices.
func BaseAxpy[T hwy.Floats](alpha T, xs, ys, dst []T) {
	size := min(len(xs), len(ys), len(dst))

	vAlpha := hwy.Set(alpha)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])

			hwy.Store(hwy.FMA(vAlpha, vx, vy), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])

			hwy.MaskStore(mask, hwy.FMA(vAlpha, vx, vy), dst[offset:])
		},
	)
}

// BaseAccum computes dst += alpha*x in place.
func BaseAccum[T hwy.Floats](alpha T, xs, dst []T) {
	BaseAxpy(alpha, xs, dst, dst)
}
