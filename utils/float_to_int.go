// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a sample in [-1,1] to 16-bit PCM, clamping values
// outside the range. It is the exact inverse of Int16ToFloat32.
func Float32ToInt16(x float32) int16 {
	v := x * 32768.0
	if v >= 32767 {
		return 32767
	}
	if v <= -32768 {
		return -32768
	}
	return int16(v)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a float32 in [-1,1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
