package jjy

// withinTolerance reports whether elapsed falls strictly inside a
// +-20% window around nominal, i.e. nominal*0.8 < elapsed < nominal*1.2.
//
// Scaled by 5 on both sides to avoid floats: 5*elapsed in
// (4*nominal, 6*nominal). The factors 4, 5 and 6 fold the 20% epsilon
// directly into the scale so the tolerance is exact at any nominal.
func withinTolerance(nominal, elapsed uint32) bool {
	lo := nominal * 4
	hi := nominal * 6
	scaled := elapsed * 5
	return scaled > lo && scaled < hi
}
