// Package synth holds the drum voices: a pitch-swept kick computed in closed
// form and two noise voices that play band-limited noise tables.
package synth

import "tjweldon/levelgen/src/util"

var logger = util.Logger{Volume: util.Normal}.Ctx("synth")
