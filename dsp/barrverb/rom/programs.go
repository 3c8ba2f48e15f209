package rom

import (
	"fmt"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb/microcode/asm"
)

// design emits the microcode of one program family.
type design interface {
	build(b *asm.Builder)
}

// branch is one half of a figure-eight tank: allpasses then a delay.
type branch struct {
	allpasses []int
	delay     int
}

// tapRef reads branch line `branch` at `delay`.
type tapRef struct {
	branch int
	delay  int
}

// tank is a diffused input feeding two cross-coupled branches. Each branch
// sums half of the other branch's output with half of the diffused input.
// The second branch stores inverted so the loop carries an odd number of
// sign flips and small residues cancel instead of sticking at -1.
type tank struct {
	preDelay  int
	diffusers []int
	branches  [2]branch
	right     []tapRef
	left      []tapRef
}

func (d tank) build(b *asm.Builder) {
	in := b.Input(d.preDelay)
	diffusers := lines(b, d.diffusers)
	diffused := b.Line(0)

	var (
		allpasses [2][]asm.Line
		delays    [2]asm.Line
	)

	for i, br := range d.branches {
		allpasses[i] = lines(b, br.allpasses)
		delays[i] = b.Line(br.delay)
	}

	b.Load(in.End())
	for _, l := range diffusers {
		b.Allpass(l)
	}
	b.Store(diffused.Head())

	for i := range d.branches {
		b.Load(delays[1-i].End())
		b.Add(diffused.Head())

		for _, l := range allpasses[i] {
			b.Allpass(l)
		}

		if i == 0 {
			b.Store(delays[i].Head())
		} else {
			b.StoreInverted(delays[i].Head())
		}
	}

	tapsOf := func(refs []tapRef) []asm.Tap {
		out := make([]asm.Tap, len(refs))
		for i, r := range refs {
			out[i] = delays[r.branch].Tap(r.delay)
		}
		return out
	}

	b.OutputRight(b.Mix(tapsOf(d.right)...))
	b.OutputLeft(b.Mix(tapsOf(d.left)...))
}

// gate diffuses the input into one long line and sums evenly spaced taps.
// There is no feedback, so the tail stops dead after the last tap.
type gate struct {
	preDelay  int
	diffusers []int
	length    int
	right     []int
	left      []int
}

func (d gate) build(b *asm.Builder) {
	in := b.Input(d.preDelay)
	diffusers := lines(b, d.diffusers)
	line := b.Line(d.length)

	b.Load(in.End())
	for _, l := range diffusers {
		b.Allpass(l)
	}
	b.Store(line.Head())

	tapsOf := func(delays []int) []asm.Tap {
		out := make([]asm.Tap, len(delays))
		for i, dl := range delays {
			out[i] = line.Tap(dl)
		}
		return out
	}

	b.OutputRight(b.Mix(tapsOf(d.right)...))
	b.OutputLeft(b.Mix(tapsOf(d.left)...))
}

// echo is a cross-fed pair of delays: A takes the input plus half of B,
// B takes minus half of A. Right reads A, left reads B.
type echo struct {
	diffusers []int
	delays    [2]int
}

func (d echo) build(b *asm.Builder) {
	in := b.Input(0)
	diffusers := lines(b, d.diffusers)
	a := b.Line(d.delays[0])
	c := b.Line(d.delays[1])

	b.Load(in.Head())
	for _, l := range diffusers {
		b.Allpass(l)
	}
	b.Add(c.End())
	b.Store(a.Head())
	b.Load(a.End())
	b.StoreInverted(c.Head())

	b.OutputRight(a.End())
	b.OutputLeft(c.End())
}

// weightedTap is a tap summed weight times into the output mix.
type weightedTap struct {
	delay  int
	weight int
}

// taps is a non-recursive multi-tap line. Rising weights give a reverse
// swell, flat weights give early reflections.
type taps struct {
	preDelay int
	length   int
	right    []weightedTap
	left     []weightedTap
}

func (d taps) build(b *asm.Builder) {
	in := b.Input(d.preDelay)
	line := b.Line(d.length)

	b.Load(in.End())
	b.Store(line.Head())

	tapsOf := func(wt []weightedTap) []asm.Tap {
		var out []asm.Tap
		for _, t := range wt {
			for range t.weight {
				out = append(out, line.Tap(t.delay))
			}
		}
		return out
	}

	b.OutputRight(b.Mix(tapsOf(d.right)...))
	b.OutputLeft(b.Mix(tapsOf(d.left)...))
}

func lines(b *asm.Builder, lengths []int) []asm.Line {
	out := make([]asm.Line, len(lengths))
	for i, n := range lengths {
		out[i] = b.Line(n)
	}
	return out
}

type program struct {
	name   string
	design design
}

// Assemble assembles built-in program index & 0x3F.
func Assemble(index uint8) (asm.Program, error) {
	p := programs[index&IndexMask]

	b := asm.New(p.name)
	p.design.build(b)

	return b.Assemble()
}

// Build assembles every built-in program into a fresh image.
func Build() (*Image, error) {
	img := &Image{}

	for i := range Programs {
		p, err := Assemble(uint8(i))
		if err != nil {
			return nil, fmt.Errorf("rom: program %d: %w", i, err)
		}

		for s, op := range p.Code {
			img.words[i*ProgramLen+s] = uint16(op)
		}
		img.names[i] = p.Name
	}

	return img, nil
}

// Delay lengths are in engine samples (half the host sample rate). The
// allpass lengths are mutually prime so the diffusers do not stack echoes.
var programs = [Programs]program{
	{"Closet", tank{
		preDelay:  8,
		diffusers: []int{142, 107},
		branches:  [2]branch{{[]int{202}, 1336}, {[]int{272}, 1116}},
		right:     []tapRef{{0, 147}, {1, 636}, {0, 1109}},
		left:      []tapRef{{1, 145}, {0, 815}, {1, 882}},
	}},
	{"Tiled Bath", tank{
		preDelay:  20,
		diffusers: []int{142, 107},
		branches:  [2]branch{{[]int{255}, 1692}, {[]int{345}, 1414}},
		right:     []tapRef{{0, 186}, {1, 806}, {0, 1404}},
		left:      []tapRef{{1, 184}, {0, 1032}, {1, 1117}},
	}},
	{"Small Room", tank{
		preDelay:  32,
		diffusers: []int{142, 107},
		branches:  [2]branch{{[]int{309}, 2048}, {[]int{418}, 1711}},
		right:     []tapRef{{0, 225}, {1, 975}, {0, 1700}},
		left:      []tapRef{{1, 222}, {0, 1249}, {1, 1352}},
	}},
	{"Studio A", tank{
		preDelay:  44,
		diffusers: []int{142, 107},
		branches:  [2]branch{{[]int{363}, 2405}, {[]int{490}, 2009}},
		right:     []tapRef{{0, 265}, {1, 1145}, {0, 1996}},
		left:      []tapRef{{1, 261}, {0, 1467}, {1, 1587}},
	}},
	{"Drum Room", tank{
		preDelay:  56,
		diffusers: []int{142, 107},
		branches:  [2]branch{{[]int{417}, 2761}, {[]int{563}, 2306}},
		right:     []tapRef{{0, 304}, {1, 1314}, {0, 2292}},
		left:      []tapRef{{1, 300}, {0, 1684}, {1, 1822}},
	}},
	{"Wood Room", tank{
		preDelay:  68,
		diffusers: []int{142, 107},
		branches:  [2]branch{{[]int{470}, 3117}, {[]int{636}, 2604}},
		right:     []tapRef{{0, 343}, {1, 1484}, {0, 2587}},
		left:      []tapRef{{1, 339}, {0, 1901}, {1, 2057}},
	}},
	{"Live Room", tank{
		preDelay:  80,
		diffusers: []int{142, 107},
		branches:  [2]branch{{[]int{524}, 3473}, {[]int{708}, 2902}},
		right:     []tapRef{{0, 382}, {1, 1654}, {0, 2883}},
		left:      []tapRef{{1, 377}, {0, 2119}, {1, 2293}},
	}},
	{"Large Room", tank{
		preDelay:  92,
		diffusers: []int{142, 107},
		branches:  [2]branch{{[]int{578}, 3830}, {[]int{781}, 3199}},
		right:     []tapRef{{0, 421}, {1, 1823}, {0, 3179}},
		left:      []tapRef{{1, 416}, {0, 2336}, {1, 2527}},
	}},
	{"Small Hall", tank{
		preDelay:  200,
		diffusers: []int{142, 107, 379, 277},
		branches:  [2]branch{{[]int{538}, 3562}, {[]int{726}, 2976}},
		right:     []tapRef{{0, 214}, {1, 1994}, {0, 1496}, {1, 2678}},
		left:      []tapRef{{1, 238}, {0, 2280}, {1, 1131}, {0, 3384}},
	}},
	{"Recital Hall", tank{
		preDelay:  240,
		diffusers: []int{142, 107, 379, 277},
		branches:  [2]branch{{[]int{598}, 3963}, {[]int{808}, 3311}},
		right:     []tapRef{{0, 238}, {1, 2218}, {0, 1664}, {1, 2980}},
		left:      []tapRef{{1, 265}, {0, 2536}, {1, 1258}, {0, 3765}},
	}},
	{"Church", tank{
		preDelay:  280,
		diffusers: []int{142, 107, 379, 277},
		branches:  [2]branch{{[]int{659}, 4364}, {[]int{890}, 3646}},
		right:     []tapRef{{0, 262}, {1, 2443}, {0, 1833}, {1, 3281}},
		left:      []tapRef{{1, 292}, {0, 2793}, {1, 1385}, {0, 4146}},
	}},
	{"Concert Hall", tank{
		preDelay:  320,
		diffusers: []int{142, 107, 379, 277},
		branches:  [2]branch{{[]int{719}, 4765}, {[]int{972}, 3980}},
		right:     []tapRef{{0, 286}, {1, 2667}, {0, 2001}, {1, 3582}},
		left:      []tapRef{{1, 318}, {0, 3050}, {1, 1512}, {0, 4527}},
	}},
	{"Cathedral", tank{
		preDelay:  360,
		diffusers: []int{142, 107, 379, 277},
		branches:  [2]branch{{[]int{780}, 5165}, {[]int{1053}, 4315}},
		right:     []tapRef{{0, 310}, {1, 2891}, {0, 2169}, {1, 3884}},
		left:      []tapRef{{1, 345}, {0, 3306}, {1, 1640}, {0, 4907}},
	}},
	{"Arena", tank{
		preDelay:  400,
		diffusers: []int{142, 107, 379, 277},
		branches:  [2]branch{{[]int{840}, 5566}, {[]int{1135}, 4650}},
		right:     []tapRef{{0, 334}, {1, 3116}, {0, 2338}, {1, 4185}},
		left:      []tapRef{{1, 372}, {0, 3562}, {1, 1767}, {0, 5288}},
	}},
	{"Canyon", tank{
		preDelay:  440,
		diffusers: []int{142, 107, 379, 277},
		branches:  [2]branch{{[]int{900}, 5967}, {[]int{1217}, 4985}},
		right:     []tapRef{{0, 358}, {1, 3340}, {0, 2506}, {1, 4486}},
		left:      []tapRef{{1, 399}, {0, 3819}, {1, 1894}, {0, 5669}},
	}},
	{"Infinite Hall", tank{
		preDelay:  480,
		diffusers: []int{142, 107, 379, 277},
		branches:  [2]branch{{[]int{961}, 6368}, {[]int{1298}, 5320}},
		right:     []tapRef{{0, 382}, {1, 3564}, {0, 2675}, {1, 4788}},
		left:      []tapRef{{1, 426}, {0, 4076}, {1, 2022}, {0, 6050}},
	}},
	{"Bright Plate", tank{
		preDelay:  0,
		diffusers: []int{47, 37, 113, 83},
		branches:  [2]branch{{[]int{168, 250}, 2226}, {[]int{227, 310}, 1860}},
		right:     []tapRef{{0, 111}, {1, 614}, {0, 1580}, {1, 1711}},
		left:      []tapRef{{1, 130}, {0, 801}, {1, 1283}, {0, 1959}},
	}},
	{"Vocal Plate", tank{
		preDelay:  4,
		diffusers: []int{47, 37, 113, 83},
		branches:  [2]branch{{[]int{192, 285}, 2538}, {[]int{259, 353}, 2120}},
		right:     []tapRef{{0, 127}, {1, 700}, {0, 1802}, {1, 1950}},
		left:      []tapRef{{1, 148}, {0, 914}, {1, 1463}, {0, 2233}},
	}},
	{"Snare Plate", tank{
		preDelay:  8,
		diffusers: []int{47, 37, 113, 83},
		branches:  [2]branch{{[]int{215, 320}, 2850}, {[]int{291, 397}, 2381}},
		right:     []tapRef{{0, 142}, {1, 786}, {0, 2024}, {1, 2191}},
		left:      []tapRef{{1, 167}, {0, 1026}, {1, 1643}, {0, 2508}},
	}},
	{"Gold Plate", tank{
		preDelay:  12,
		diffusers: []int{47, 37, 113, 83},
		branches:  [2]branch{{[]int{239, 355}, 3162}, {[]int{322, 440}, 2641}},
		right:     []tapRef{{0, 158}, {1, 872}, {0, 2245}, {1, 2430}},
		left:      []tapRef{{1, 185}, {0, 1138}, {1, 1822}, {0, 2783}},
	}},
	{"Steel Plate", tank{
		preDelay:  16,
		diffusers: []int{47, 37, 113, 83},
		branches:  [2]branch{{[]int{262, 390}, 3473}, {[]int{354, 484}, 2902}},
		right:     []tapRef{{0, 174}, {1, 958}, {0, 2466}, {1, 2670}},
		left:      []tapRef{{1, 203}, {0, 1250}, {1, 2002}, {0, 3056}},
	}},
	{"Dark Plate", tank{
		preDelay:  20,
		diffusers: []int{47, 37, 113, 83},
		branches:  [2]branch{{[]int{286, 425}, 3785}, {[]int{386, 527}, 3162}},
		right:     []tapRef{{0, 189}, {1, 1043}, {0, 2687}, {1, 2909}},
		left:      []tapRef{{1, 221}, {0, 1363}, {1, 2182}, {0, 3331}},
	}},
	{"Long Plate", tank{
		preDelay:  24,
		diffusers: []int{47, 37, 113, 83},
		branches:  [2]branch{{[]int{309, 460}, 4097}, {[]int{418, 570}, 3422}},
		right:     []tapRef{{0, 205}, {1, 1129}, {0, 2909}, {1, 3148}},
		left:      []tapRef{{1, 240}, {0, 1475}, {1, 2361}, {0, 3605}},
	}},
	{"Huge Plate", tank{
		preDelay:  28,
		diffusers: []int{47, 37, 113, 83},
		branches:  [2]branch{{[]int{333, 495}, 4408}, {[]int{449, 614}, 3683}},
		right:     []tapRef{{0, 220}, {1, 1215}, {0, 3130}, {1, 3388}},
		left:      []tapRef{{1, 258}, {0, 1587}, {1, 2541}, {0, 3879}},
	}},
	{"Echo Chamber", tank{
		preDelay:  60,
		diffusers: []int{142, 107, 379},
		branches:  [2]branch{{[]int{370}, 1705}, {[]int{499}, 1595}},
		right:     []tapRef{{0, 358}, {1, 1228}},
		left:      []tapRef{{1, 431}, {0, 1245}},
	}},
	{"Stone Chamber", tank{
		preDelay:  70,
		diffusers: []int{142, 107, 379},
		branches:  [2]branch{{[]int{410}, 1891}, {[]int{554}, 1769}},
		right:     []tapRef{{0, 397}, {1, 1362}},
		left:      []tapRef{{1, 478}, {0, 1380}},
	}},
	{"Vault", tank{
		preDelay:  80,
		diffusers: []int{142, 107, 379},
		branches:  [2]branch{{[]int{450}, 2077}, {[]int{608}, 1943}},
		right:     []tapRef{{0, 436}, {1, 1496}},
		left:      []tapRef{{1, 525}, {0, 1516}},
	}},
	{"Tunnel", tank{
		preDelay:  90,
		diffusers: []int{142, 107, 379},
		branches:  [2]branch{{[]int{491}, 2263}, {[]int{663}, 2117}},
		right:     []tapRef{{0, 475}, {1, 1630}},
		left:      []tapRef{{1, 572}, {0, 1652}},
	}},
	{"Stairwell", tank{
		preDelay:  100,
		diffusers: []int{142, 107, 379},
		branches:  [2]branch{{[]int{531}, 2449}, {[]int{717}, 2291}},
		right:     []tapRef{{0, 514}, {1, 1764}},
		left:      []tapRef{{1, 619}, {0, 1788}},
	}},
	{"Garage", tank{
		preDelay:  110,
		diffusers: []int{142, 107, 379},
		branches:  [2]branch{{[]int{571}, 2635}, {[]int{772}, 2465}},
		right:     []tapRef{{0, 553}, {1, 1898}},
		left:      []tapRef{{1, 666}, {0, 1924}},
	}},
	{"Silo", tank{
		preDelay:  120,
		diffusers: []int{142, 107, 379},
		branches:  [2]branch{{[]int{612}, 2821}, {[]int{826}, 2639}},
		right:     []tapRef{{0, 592}, {1, 2032}},
		left:      []tapRef{{1, 713}, {0, 2059}},
	}},
	{"Tank", tank{
		preDelay:  130,
		diffusers: []int{142, 107, 379},
		branches:  [2]branch{{[]int{652}, 3007}, {[]int{881}, 2813}},
		right:     []tapRef{{0, 631}, {1, 2166}},
		left:      []tapRef{{1, 760}, {0, 2195}},
	}},
	{"Tight Gate", gate{
		preDelay:  0,
		diffusers: []int{142, 107, 379, 277},
		length:    1800,
		right:     []int{90, 390, 690, 990, 1290, 1590},
		left:      []int{210, 510, 810, 1110, 1410, 1710},
	}},
	{"Snare Gate", gate{
		preDelay:  10,
		diffusers: []int{142, 107, 379, 277},
		length:    2100,
		right:     []int{105, 455, 805, 1155, 1505, 1855},
		left:      []int{245, 595, 945, 1295, 1645, 1995},
	}},
	{"Gated Room", gate{
		preDelay:  20,
		diffusers: []int{142, 107, 379, 277},
		length:    2400,
		right:     []int{120, 520, 920, 1320, 1720, 2120},
		left:      []int{280, 680, 1080, 1480, 1880, 2280},
	}},
	{"Gated Hall", gate{
		preDelay:  30,
		diffusers: []int{142, 107, 379, 277},
		length:    2700,
		right:     []int{135, 585, 1035, 1485, 1935, 2385},
		left:      []int{315, 765, 1215, 1665, 2115, 2565},
	}},
	{"Slow Gate", gate{
		preDelay:  40,
		diffusers: []int{142, 107, 379, 277},
		length:    3000,
		right:     []int{150, 650, 1150, 1650, 2150, 2650},
		left:      []int{350, 850, 1350, 1850, 2350, 2850},
	}},
	{"Wide Gate", gate{
		preDelay:  50,
		diffusers: []int{142, 107, 379, 277},
		length:    3300,
		right:     []int{165, 715, 1265, 1815, 2365, 2915},
		left:      []int{385, 935, 1485, 2035, 2585, 3135},
	}},
	{"Long Gate", gate{
		preDelay:  60,
		diffusers: []int{142, 107, 379, 277},
		length:    3600,
		right:     []int{180, 780, 1380, 1980, 2580, 3180},
		left:      []int{420, 1020, 1620, 2220, 2820, 3420},
	}},
	{"Huge Gate", gate{
		preDelay:  70,
		diffusers: []int{142, 107, 379, 277},
		length:    3900,
		right:     []int{195, 845, 1495, 2145, 2795, 3445},
		left:      []int{455, 1105, 1755, 2405, 3055, 3705},
	}},
	{"Reverse 1", taps{
		preDelay: 0,
		length:   2500,
		right:    []weightedTap{{311, 1}, {621, 1}, {931, 2}, {1240, 2}, {1549, 3}, {1859, 3}, {2169, 4}, {2478, 4}},
		left:     []weightedTap{{310, 1}, {618, 1}, {926, 2}, {1233, 2}, {1540, 3}, {1848, 3}, {2156, 4}, {2463, 4}},
	}},
	{"Reverse 2", taps{
		preDelay: 0,
		length:   2900,
		right:    []weightedTap{{361, 1}, {721, 1}, {1081, 2}, {1440, 2}, {1799, 3}, {2159, 3}, {2519, 4}, {2878, 4}},
		left:     []weightedTap{{360, 1}, {718, 1}, {1076, 2}, {1433, 2}, {1790, 3}, {2148, 3}, {2506, 4}, {2863, 4}},
	}},
	{"Reverse 3", taps{
		preDelay: 0,
		length:   3300,
		right:    []weightedTap{{411, 1}, {821, 1}, {1231, 2}, {1640, 2}, {2049, 3}, {2459, 3}, {2869, 4}, {3278, 4}},
		left:     []weightedTap{{410, 1}, {818, 1}, {1226, 2}, {1633, 2}, {2040, 3}, {2448, 3}, {2856, 4}, {3263, 4}},
	}},
	{"Reverse 4", taps{
		preDelay: 0,
		length:   3700,
		right:    []weightedTap{{461, 1}, {921, 1}, {1381, 2}, {1840, 2}, {2299, 3}, {2759, 3}, {3219, 4}, {3678, 4}},
		left:     []weightedTap{{460, 1}, {918, 1}, {1376, 2}, {1833, 2}, {2290, 3}, {2748, 3}, {3206, 4}, {3663, 4}},
	}},
	{"Swell", taps{
		preDelay: 0,
		length:   4100,
		right:    []weightedTap{{511, 1}, {1021, 1}, {1531, 2}, {2040, 2}, {2549, 3}, {3059, 3}, {3569, 4}, {4078, 4}},
		left:     []weightedTap{{510, 1}, {1018, 1}, {1526, 2}, {2033, 2}, {2540, 3}, {3048, 3}, {3556, 4}, {4063, 4}},
	}},
	{"Backwards", taps{
		preDelay: 0,
		length:   4500,
		right:    []weightedTap{{561, 1}, {1121, 1}, {1681, 2}, {2240, 2}, {2799, 3}, {3359, 3}, {3919, 4}, {4478, 4}},
		left:     []weightedTap{{560, 1}, {1118, 1}, {1676, 2}, {2233, 2}, {2790, 3}, {3348, 3}, {3906, 4}, {4463, 4}},
	}},
	{"Inhale", taps{
		preDelay: 0,
		length:   4900,
		right:    []weightedTap{{611, 1}, {1221, 1}, {1831, 2}, {2440, 2}, {3049, 3}, {3659, 3}, {4269, 4}, {4878, 4}},
		left:     []weightedTap{{610, 1}, {1218, 1}, {1826, 2}, {2433, 2}, {3040, 3}, {3648, 3}, {4256, 4}, {4863, 4}},
	}},
	{"Suck", taps{
		preDelay: 0,
		length:   5300,
		right:    []weightedTap{{661, 1}, {1321, 1}, {1981, 2}, {2640, 2}, {3299, 3}, {3959, 3}, {4619, 4}, {5278, 4}},
		left:     []weightedTap{{660, 1}, {1318, 1}, {1976, 2}, {2633, 2}, {3290, 3}, {3948, 3}, {4606, 4}, {5263, 4}},
	}},
	{"Slap Back", echo{diffusers: nil, delays: [2]int{700, 700}}},
	{"Short Echo", echo{diffusers: nil, delays: [2]int{1600, 1200}}},
	{"Doubler", echo{diffusers: nil, delays: [2]int{2500, 2500}}},
	{"Ping Pong", echo{diffusers: nil, delays: [2]int{3400, 2550}}},
	{"Long Echo", echo{diffusers: nil, delays: [2]int{4300, 4300}}},
	{"Diffuse Echo", echo{diffusers: []int{142, 107}, delays: [2]int{5200, 3900}}},
	{"Tape Echo", echo{diffusers: []int{142, 107}, delays: [2]int{6100, 6100}}},
	{"Canyon Echo", echo{diffusers: []int{142, 107}, delays: [2]int{7000, 5250}}},
	{"Early Refl 1", taps{
		preDelay: 0,
		length:   800,
		right:    []weightedTap{{56, 1}, {152, 1}, {248, 1}, {368, 1}, {504, 1}, {792, 1}},
		left:     []weightedTap{{88, 1}, {184, 1}, {296, 1}, {416, 1}, {568, 1}, {744, 1}},
	}},
	{"Early Refl 2", taps{
		preDelay: 40,
		length:   1300,
		right:    []weightedTap{{91, 1}, {247, 1}, {403, 1}, {598, 1}, {819, 1}, {1287, 1}},
		left:     []weightedTap{{143, 1}, {299, 1}, {481, 1}, {676, 1}, {923, 1}, {1209, 1}},
	}},
	{"Early Refl 3", taps{
		preDelay: 80,
		length:   1800,
		right:    []weightedTap{{126, 1}, {342, 1}, {558, 1}, {828, 1}, {1134, 1}, {1782, 1}},
		left:     []weightedTap{{198, 1}, {414, 1}, {666, 1}, {936, 1}, {1278, 1}, {1674, 1}},
	}},
	{"Early Refl 4", taps{
		preDelay: 120,
		length:   2300,
		right:    []weightedTap{{161, 1}, {437, 1}, {713, 1}, {1058, 1}, {1449, 1}, {2277, 1}},
		left:     []weightedTap{{253, 1}, {529, 1}, {851, 1}, {1196, 1}, {1633, 1}, {2139, 1}},
	}},
	{"Ambience", taps{
		preDelay: 160,
		length:   2800,
		right:    []weightedTap{{196, 1}, {532, 1}, {868, 1}, {1288, 1}, {1764, 1}, {2772, 1}},
		left:     []weightedTap{{308, 1}, {644, 1}, {1036, 1}, {1456, 1}, {1988, 1}, {2604, 1}},
	}},
	{"Club", taps{
		preDelay: 200,
		length:   3300,
		right:    []weightedTap{{231, 1}, {627, 1}, {1023, 1}, {1518, 1}, {2079, 1}, {3267, 1}},
		left:     []weightedTap{{363, 1}, {759, 1}, {1221, 1}, {1716, 1}, {2343, 1}, {3069, 1}},
	}},
	{"Stage", taps{
		preDelay: 240,
		length:   3800,
		right:    []weightedTap{{266, 1}, {722, 1}, {1178, 1}, {1748, 1}, {2394, 1}, {3762, 1}},
		left:     []weightedTap{{418, 1}, {874, 1}, {1406, 1}, {1976, 1}, {2698, 1}, {3534, 1}},
	}},
	{"Stadium", taps{
		preDelay: 280,
		length:   4300,
		right:    []weightedTap{{301, 1}, {817, 1}, {1333, 1}, {1978, 1}, {2709, 1}, {4257, 1}},
		left:     []weightedTap{{473, 1}, {989, 1}, {1591, 1}, {2236, 1}, {3053, 1}, {3999, 1}},
	}},
}
