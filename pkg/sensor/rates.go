package sensor

import "math"

// DefaultRate is the frame interval used until one is requested.
var DefaultRate = Rate{Num: 1, Den: 30}

// Rate is one frame-rate preset: the interval Num/Den seconds and the register
// values producing it.
type Rate struct {
	Num, Den uint32
	R11      uint8 // sensor clock divider
	R0D      uint8 // sensor PLL
	RE5      uint8 // bridge
}

func (r Rate) FPS() float64 {
	return float64(r.Den) / float64(r.Num)
}

// RateTable is ordered fastest first.
type RateTable []Rate

// Nearest returns the entry matching num/den exactly, or else the entry whose
// frame rate is closest to den/num. It returns false for an empty table.
func (t RateTable) Nearest(num, den uint32) (Rate, bool) {
	if len(t) == 0 {
		return Rate{}, false
	}
	for _, r := range t {
		if r.Num == num && r.Den == den {
			return r, true
		}
	}
	if num == 0 || den == 0 {
		num, den = DefaultRate.Num, DefaultRate.Den
	}
	want := float64(den) / float64(num)
	best := t[0]
	for _, r := range t[1:] {
		if math.Abs(r.FPS()-want) < math.Abs(best.FPS()-want) {
			best = r
		}
	}
	return best, true
}

// RatesVGA applies to 640x480.
var RatesVGA = RateTable{
	{1, 75, 0x01, 0x81, 0x02},
	{1, 60, 0x00, 0x41, 0x04},
	{1, 50, 0x01, 0x41, 0x02},
	{1, 40, 0x02, 0xc1, 0x04},
	{1, 30, 0x04, 0x81, 0x02},
	{1, 25, 0x00, 0x01, 0x02},
	{1, 20, 0x04, 0x41, 0x02},
	{1, 15, 0x09, 0x81, 0x02},
	{1, 10, 0x09, 0x41, 0x02},
	{1, 8, 0x02, 0x01, 0x02},
	{1, 5, 0x04, 0x01, 0x02},
	{1, 3, 0x06, 0x01, 0x02},
	{1, 2, 0x09, 0x01, 0x02},
	{1, 1, 0x18, 0x01, 0x02},
	{10, 9, 0x31, 0x81, 0x09},
	{10, 8, 0x2e, 0x41, 0x07},
	{10, 7, 0x3d, 0x41, 0x06},
	{10, 6, 0x18, 0x01, 0x04},
	{10, 5, 0x31, 0x01, 0x02},
	{10, 4, 0x2e, 0x01, 0x03},
	{10, 3, 0x31, 0x01, 0x04},
	{10, 2, 0x2b, 0x01, 0x08},
	{10, 1, 0x3f, 0x01, 0x0a},
}

// RatesQVGA applies to 320x240.
var RatesQVGA = RateTable{
	{1, 187, 0x01, 0x81, 0x02},
	{1, 150, 0x00, 0x41, 0x04},
	{1, 137, 0x02, 0xc1, 0x02},
	{1, 125, 0x01, 0x41, 0x02},
	{1, 100, 0x02, 0xc1, 0x04},
	{1, 90, 0x03, 0x81, 0x02},
	{1, 75, 0x04, 0x81, 0x02},
	{1, 60, 0x04, 0xc1, 0x04},
	{1, 50, 0x04, 0x41, 0x02},
	{1, 40, 0x06, 0x81, 0x03},
	{1, 37, 0x00, 0x01, 0x04},
	{1, 30, 0x04, 0x41, 0x04},
	{1, 17, 0x18, 0xc1, 0x02},
	{1, 15, 0x18, 0x81, 0x02},
	{1, 12, 0x02, 0x01, 0x04},
	{1, 10, 0x18, 0x41, 0x02},
	{1, 7, 0x04, 0x01, 0x04},
	{1, 5, 0x06, 0x01, 0x04},
	{1, 3, 0x09, 0x01, 0x04},
	{1, 2, 0x18, 0x01, 0x02},
}
