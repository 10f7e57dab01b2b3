package automap

import "github.com/lixenwraith/automap/vmath"

func ml(ax, ay, bx, by int64) MapLine {
	return MapLine{MapPoint{ax, ay}, MapPoint{bx, by}}
}

// arrowR is the half length of the player arrows, in map units
const arrowR = 8 * PlayerRadius / 7

// Unit shapes are scaled by a radius in map units when drawn
const unitR int64 = vmath.FracUnit

// DoomArrow is the plain player arrow
var DoomArrow = func() []MapLine {
	const R = arrowR
	return []MapLine{
		ml(-R+R/8, 0, R, 0),  // -----
		ml(R, 0, R-R/2, R/4), // ----->
		ml(R, 0, R-R/2, -R/4),
		ml(-R+R/8, 0, -R-R/8, R/4), // >---->
		ml(-R+R/8, 0, -R-R/8, -R/4),
		ml(-R+3*R/8, 0, -R+R/8, R/4), // >>--->
		ml(-R+3*R/8, 0, -R+R/8, -R/4),
	}
}()

// DoomCheatArrow spells the cheat into the shaft
var DoomCheatArrow = func() []MapLine {
	const R = arrowR
	return []MapLine{
		ml(-R+R/8, 0, R, 0),
		ml(R, 0, R-R/2, R/6),
		ml(R, 0, R-R/2, -R/6),
		ml(-R+R/8, 0, -R-R/8, R/6),
		ml(-R+R/8, 0, -R-R/8, -R/6),
		ml(-R+3*R/8, 0, -R+R/8, R/6),
		ml(-R+3*R/8, 0, -R+R/8, -R/6),
		ml(-R/2, 0, -R/2, -R/6), // d
		ml(-R/2, -R/6, -R/2+R/6, -R/6),
		ml(-R/2+R/6, -R/6, -R/2+R/6, R/4),
		ml(-R/6, 0, -R/6, -R/6), // d
		ml(-R/6, -R/6, 0, -R/6),
		ml(0, -R/6, 0, R/4),
		ml(R/6, R/4, R/6, -R/7), // t
		ml(R/6, -R/7, R/6+R/32, -R/7-R/32),
		ml(R/6+R/32, -R/7-R/32, R/6+R/10, -R/7),
	}
}()

// SwordArrow is the Heretic and Hexen player marker
var SwordArrow = func() []MapLine {
	const R = arrowR
	return []MapLine{
		ml(-R+R/4, 0, 0, 0),   // center line
		ml(-R+R/4, R/8, R, 0), // blade
		ml(-R+R/4, -R/8, R, 0),
		ml(-R+R/4, -R/4, -R+R/4, R/4), // crosspiece
		ml(-R+R/8, -R/4, -R+R/8, R/4),
		ml(-R+R/8, -R/4, -R+R/4, -R/4), // crosspiece connectors
		ml(-R+R/8, R/4, -R+R/4, R/4),
		ml(-R-R/4, R/8, -R-R/4, -R/8), // pommel
		ml(-R-R/4, R/8, -R+R/8, R/8),
		ml(-R-R/4, -R/8, -R+R/8, -R/8),
	}
}()

// TriangleGuy is an equilateral unit triangle
var TriangleGuy = func() []MapLine {
	const R = unitR
	const sin60 = R * 867 / 1000
	return []MapLine{
		ml(-sin60, -R/2, sin60, -R/2),
		ml(sin60, -R/2, 0, R),
		ml(0, R, -sin60, -R/2),
	}
}()

// ThinTriangleGuy is the unit thing marker, pointing along +x
var ThinTriangleGuy = func() []MapLine {
	const R = unitR
	return []MapLine{
		ml(-R/2, -R*7/10, R, 0),
		ml(R, 0, -R/2, R*7/10),
		ml(-R/2, R*7/10, -R/2, -R*7/10),
	}
}()
