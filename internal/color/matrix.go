package color

// mat3 is a row-major 3×3 matrix.
type mat3 [9]float64

func (m mat3) apply(x, y, z float64) (float64, float64, float64) {
	return m[0]*x + m[1]*y + m[2]*z,
		m[3]*x + m[4]*y + m[5]*z,
		m[6]*x + m[7]*y + m[8]*z
}

// mul returns m·n, so that m.mul(n).apply(v) == m.apply(n.apply(v)).
func (m mat3) mul(n mat3) mat3 {
	var out mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3]*n[c] + m[r*3+1]*n[3+c] + m[r*3+2]*n[6+c]
		}
	}
	return out
}

// White points, Y normalized to 1, from the CIE 1931 chromaticities
// D65 (0.3127, 0.3290) and D50 (0.3457, 0.3585). Every RGB matrix below is
// derived from the same chromaticities, so white maps to white across
// spaces.
var (
	WhiteD65 = [3]float64{0.3127 / 0.3290, 1.0, (1.0 - 0.3127 - 0.3290) / 0.3290}
	WhiteD50 = [3]float64{0.3457 / 0.3585, 1.0, (1.0 - 0.3457 - 0.3585) / 0.3585}
)

// Linear sRGB <-> XYZ (D65). The forward rows sum to WhiteD65.
var (
	srgbToXYZ = mat3{
		506752.0 / 1228815, 87881.0 / 245763, 12673.0 / 70218,
		87098.0 / 409605, 175762.0 / 245763, 12673.0 / 175545,
		7918.0 / 409605, 87881.0 / 737289, 1001167.0 / 1053270,
	}
	xyzToSRGB = mat3{
		12831.0 / 3959, -329.0 / 214, -1974.0 / 3959,
		-851781.0 / 878810, 1648619.0 / 878810, 36519.0 / 878810,
		705.0 / 12673, -2585.0 / 12673, 705.0 / 667,
	}
)

// Bradford chromatic adaptation between D65 and D50.
var (
	bradfordD65ToD50 = mat3{
		1.0479297925449969, 0.022946870601609652, -0.05019226628920524,
		0.02962780877005599, 0.9904344267538799, -0.017073799063418826,
		-0.009243040646204504, 0.015055191490298152, 0.7518742814281371,
	}
	bradfordD50ToD65 = mat3{
		0.955473421488075, -0.02309845494876471, 0.06325924320057072,
		-0.0283697093338637, 1.0099953980813041, 0.021041441191917323,
		0.012314014864481998, -0.020507649298898964, 1.330365926242124,
	}
)

// Wide-gamut primaries, linear RGB <-> XYZ in the space's own white.
var (
	p3ToXYZ = mat3{
		608311.0 / 1250200, 189793.0 / 714400, 198249.0 / 1000160,
		35783.0 / 156275, 247089.0 / 357200, 198249.0 / 2500400,
		0, 32229.0 / 714400, 5220557.0 / 5000800,
	}
	xyzToP3 = mat3{
		446124.0 / 178915, -333277.0 / 357830, -72051.0 / 178915,
		-14852.0 / 17905, 63121.0 / 35810, 423.0 / 17905,
		11844.0 / 330415, -50337.0 / 660830, 316169.0 / 330415,
	}

	rec2020ToXYZ = mat3{
		63426534.0 / 99577255, 20160776.0 / 139408157, 47086771.0 / 278816314,
		26158966.0 / 99577255, 472592308.0 / 697040785, 8267143.0 / 139408157,
		0, 19567812.0 / 697040785, 295819943.0 / 278816314,
	}
	xyzToRec2020 = mat3{
		30757411.0 / 17917100, -6372589.0 / 17917100, -4539589.0 / 17917100,
		-19765991.0 / 29648200, 47925759.0 / 29648200, 467509.0 / 29648200,
		792561.0 / 44930125, -1921689.0 / 44930125, 42328811.0 / 44930125,
	}

	// ProPhoto is defined against D50.
	proPhotoToXYZD50 = mat3{
		0.7977604896723027, 0.13518583717574031, 0.0313493495815248,
		0.2880711282292934, 0.7118432178101014, 0.00008565396060525902,
		0, 0, 0.8251046025104601,
	}
	xyzD50ToProPhoto = mat3{
		1.3457989731028281, -0.25558010007997534, -0.05110628506753401,
		-0.5446224939028347, 1.5082327413132781, 0.02053603239147973,
		0, 0, 1.2119675456389454,
	}

	a98ToXYZ = mat3{
		573536.0 / 994567, 263643.0 / 1420810, 187206.0 / 994567,
		591459.0 / 1989134, 6239551.0 / 9945670, 374412.0 / 4972835,
		53769.0 / 1989134, 351524.0 / 4972835, 4929758.0 / 4972835,
	}
	xyzToA98 = mat3{
		1829569.0 / 896150, -506331.0 / 896150, -308931.0 / 896150,
		-851781.0 / 878810, 1648619.0 / 878810, 36519.0 / 878810,
		16779.0 / 1248040, -147721.0 / 1248040, 1266979.0 / 1248040,
	}
)

// OKLab (Ottosson) matrices on XYZ D65.
var (
	xyzToLMS = mat3{
		0.8190224432164319, 0.3619062562801221, -0.12887378261216414,
		0.0329836671980271, 0.9292868468965546, 0.03614466816999844,
		0.048177199566046255, 0.26423952494422764, 0.6335478258136937,
	}
	lmsToOKLab = mat3{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	}
	okLabToLMS = mat3{
		0.99999999845051981432, 0.39633779217376785678, 0.21580375806075880339,
		1.0000000088817607767, -0.1055613423236563494, -0.063854174771705903402,
		1.0000000546724109177, -0.089484182094965759684, -1.2914855378640917399,
	}
	lmsToXYZ = mat3{
		1.2268798733741557, -0.5578149965554813, 0.28139105017721583,
		-0.04057576262431372, 1.1122868293970594, -0.07171106666151701,
		-0.07637294974672142, -0.4214933239627914, 1.5869240244272418,
	}
)
