package bits

import "testing"

func TestGetSetBitsRoundTrip(t *testing.T) {
	for x := 0; x < 256; x++ {
		for hi := uint8(0); hi < 8; hi++ {
			for lo := uint8(0); lo <= hi; lo++ {
				width := hi - lo + 1
				maxV := uint8((1 << width) - 1)
				for v := 0; v <= int(maxV); v++ {
					got := GetBits(SetBits(uint8(x), hi, lo, uint8(v)), hi, lo)
					if got != uint8(v) {
						t.Fatalf("x=%#x hi=%d lo=%d v=%#x: got %#x", x, hi, lo, v, got)
					}
				}
			}
		}
	}
}

func TestSetBitGetBitIdentity(t *testing.T) {
	for x := 0; x < 256; x++ {
		for i := uint8(0); i < 8; i++ {
			set := Set(uint8(x), i)
			if !Test(set, i) {
				t.Fatalf("Set(%#x, %d) did not set bit", x, i)
			}
			cleared := Reset(set, i)
			if Test(cleared, i) {
				t.Fatalf("Reset(%#x, %d) did not clear bit", set, i)
			}
			// other bits are untouched by Set
			for j := uint8(0); j < 8; j++ {
				if j == i {
					continue
				}
				if Test(uint8(x), j) != Test(set, j) {
					t.Fatalf("Set(%#x, %d) disturbed bit %d", x, i, j)
				}
			}
		}
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	for _, v := range []uint16{0x0000, 0x0001, 0x00FF, 0xFF00, 0xFFFF, 0x1234, 0xABCD} {
		hi, lo := Split(v)
		if Join(hi, lo) != v {
			t.Fatalf("Join(Split(%#x)) != %#x", v, v)
		}
	}
	for hi := 0; hi < 256; hi += 17 {
		for lo := 0; lo < 256; lo += 23 {
			h, l := Split(Join(uint8(hi), uint8(lo)))
			if h != uint8(hi) || l != uint8(lo) {
				t.Fatalf("Split(Join(%#x,%#x)) = (%#x,%#x)", hi, lo, h, l)
			}
		}
	}
}
