package model

const (
	// BallCount is the number of numbered balls in a rack
	BallCount = 15
	// EightBall carries the special win and scratch rules
	EightBall = 8
)

// FullRack returns balls 1 through 15 in order
func FullRack() []int {
	balls := make([]int, BallCount)
	for i := range balls {
		balls[i] = i + 1
	}
	return balls
}

// IsValidBall returns true if n names a ball in the rack
func IsValidBall(n int) bool {
	return n >= 1 && n <= BallCount
}
