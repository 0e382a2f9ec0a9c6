package geom

import "testing"

func BenchmarkDistance(b *testing.B) {
	p1, p2 := Pt(3, 4), Pt(-7, 11)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Distance(p1, p2)
	}
}

func BenchmarkRect_ScaleToSize(b *testing.B) {
	r := NewRect(0, 0, 1920, 1080)
	target := Sz(640, 480)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.ScaleToSize(target, ScaleProportionally)
	}
}

func BenchmarkRect_Align(b *testing.B) {
	alignee := NewRect(0, 0, 64, 48)
	aligner := NewRect(10, 10, 1920, 1080)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = alignee.Align(aligner, AlignCenter)
	}
}
