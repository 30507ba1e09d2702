package beep

import "time"

// Square returns dur worth of a square wave at freq, sampled at rate
func Square(freq int, dur time.Duration, rate int, volume int16) []int16 {
	if freq <= 0 || dur <= 0 {
		return nil
	}
	n := int(int64(rate) * int64(dur) / int64(time.Second))
	out := make([]int16, n)
	half := rate / (2 * freq)
	if half < 1 {
		half = 1
	}
	for i := range out {
		if (i/half)%2 == 0 {
			out[i] = volume
		} else {
			out[i] = -volume
		}
	}
	return out
}
