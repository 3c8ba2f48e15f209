package core

import "testing"

func TestPad(t *testing.T) {
	tests := []struct {
		name    string
		buf     []int16
		n       int
		want    []int16
		inPlace bool
	}{
		{"longer", []int16{1, 2, 3}, 2, []int16{1, 2, 3}, true},
		{"equal", []int16{1, 2}, 2, []int16{1, 2}, true},
		{"grow", []int16{1, 2}, 4, []int16{1, 2, 0, 0}, false},
		{"nil", nil, 3, []int16{0, 0, 0}, false},
		{"negative", []int16{7}, -1, []int16{7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pad(tt.buf, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
			if tt.inPlace && len(tt.buf) > 0 && &got[0] != &tt.buf[0] {
				t.Fatal("buffer was reallocated")
			}
		})
	}
}

func TestPadClearsReusedCapacity(t *testing.T) {
	backing := []int16{1, 2, 9, 9}
	got := Pad(backing[:2], 4)
	if &got[0] != &backing[0] {
		t.Fatal("capacity was not reused")
	}
	if got[2] != 0 || got[3] != 0 {
		t.Fatalf("stale tail: %v", got)
	}
}
