package gonumform

import "gonum.org/v1/gonum/unit"

// entry describes a unit symbol: the factor to SI base units and the
// dimension signature.
type entry struct {
	factor float64
	dims   unit.Dimensions
}

func dims(pairs ...any) unit.Dimensions {
	d := unit.Dimensions{}
	for i := 0; i < len(pairs); i += 2 {
		d[pairs[i].(unit.Dimension)] = pairs[i+1].(int)
	}
	return d
}

// symbols maps case-sensitive unit symbols to their SI definition. Direct
// lookup happens before prefix resolution, so "min" is minutes, never
// milli-inches.
var symbols = map[string]entry{
	// SI base units. Mass is anchored on the kilogram, so the gram carries
	// the 1e-3 factor and "kg" resolves through the kilo prefix.
	"m":   {1, dims(unit.LengthDim, 1)},
	"s":   {1, dims(unit.TimeDim, 1)},
	"g":   {1e-3, dims(unit.MassDim, 1)},
	"A":   {1, dims(unit.CurrentDim, 1)},
	"K":   {1, dims(unit.TemperatureDim, 1)},
	"mol": {1, dims(unit.MoleDim, 1)},
	"cd":  {1, dims(unit.LuminousIntensityDim, 1)},
	"rad": {1, dims(unit.AngleDim, 1)},

	// Derived units.
	"Hz":  {1, dims(unit.TimeDim, -1)},
	"N":   {1, dims(unit.MassDim, 1, unit.LengthDim, 1, unit.TimeDim, -2)},
	"Pa":  {1, dims(unit.MassDim, 1, unit.LengthDim, -1, unit.TimeDim, -2)},
	"J":   {1, dims(unit.MassDim, 1, unit.LengthDim, 2, unit.TimeDim, -2)},
	"W":   {1, dims(unit.MassDim, 1, unit.LengthDim, 2, unit.TimeDim, -3)},
	"C":   {1, dims(unit.CurrentDim, 1, unit.TimeDim, 1)},
	"V":   {1, dims(unit.MassDim, 1, unit.LengthDim, 2, unit.TimeDim, -3, unit.CurrentDim, -1)},

	// Accepted non-SI units.
	"eV":       {1.602176634e-19, dims(unit.MassDim, 1, unit.LengthDim, 2, unit.TimeDim, -2)},
	"cal":      {4.184, dims(unit.MassDim, 1, unit.LengthDim, 2, unit.TimeDim, -2)},
	"L":        {1e-3, dims(unit.LengthDim, 3)},
	"bar":      {1e5, dims(unit.MassDim, 1, unit.LengthDim, -1, unit.TimeDim, -2)},
	"min":      {60, dims(unit.TimeDim, 1)},
	"h":        {3600, dims(unit.TimeDim, 1)},
	"day":      {86400, dims(unit.TimeDim, 1)},
	"angstrom": {1e-10, dims(unit.LengthDim, 1)},
}

// names maps spelled-out unit names to the same definitions, for inputs like
// "10 nanometer". Plural forms resolve by stripping a trailing "s".
var names = map[string]entry{
	"meter":        symbols["m"],
	"metre":        symbols["m"],
	"second":       symbols["s"],
	"gram":         symbols["g"],
	"ampere":       symbols["A"],
	"kelvin":       symbols["K"],
	"mole":         symbols["mol"],
	"candela":      symbols["cd"],
	"radian":       symbols["rad"],
	"hertz":        symbols["Hz"],
	"newton":       symbols["N"],
	"pascal":       symbols["Pa"],
	"joule":        symbols["J"],
	"watt":         symbols["W"],
	"coulomb":      symbols["C"],
	"volt":         symbols["V"],
	"calorie":      symbols["cal"],
	"liter":        symbols["L"],
	"litre":        symbols["L"],
	"minute":       symbols["min"],
	"hour":         symbols["h"],
	"electronvolt": symbols["eV"],
}

// prefix describes an SI prefix by symbol and name.
type prefix struct {
	symbol string
	name   string
	factor float64
}

// prefixes is ordered longest symbol first so "da" wins over "d" during
// resolution.
var prefixes = []prefix{
	{"da", "deca", 1e1},
	{"Y", "yotta", 1e24},
	{"Z", "zetta", 1e21},
	{"E", "exa", 1e18},
	{"P", "peta", 1e15},
	{"T", "tera", 1e12},
	{"G", "giga", 1e9},
	{"M", "mega", 1e6},
	{"k", "kilo", 1e3},
	{"h", "hecto", 1e2},
	{"d", "deci", 1e-1},
	{"c", "centi", 1e-2},
	{"m", "milli", 1e-3},
	{"u", "micro", 1e-6},
	{"µ", "micro", 1e-6},
	{"n", "nano", 1e-9},
	{"p", "pico", 1e-12},
	{"f", "femto", 1e-15},
	{"a", "atto", 1e-18},
	{"z", "zepto", 1e-21},
	{"y", "yocto", 1e-24},
}

// resolveSymbol looks up a single unit token, trying the symbol and name
// tables directly, then with an SI prefix peeled off the front.
func resolveSymbol(tok string) (entry, bool) {
	if e, ok := symbols[tok]; ok {
		return e, true
	}
	if e, ok := lookupName(tok); ok {
		return e, true
	}
	for _, p := range prefixes {
		rest, ok := cutPrefix(tok, p.symbol)
		if ok {
			if e, found := symbols[rest]; found {
				return entry{factor: p.factor * e.factor, dims: e.dims}, true
			}
		}
		rest, ok = cutPrefix(tok, p.name)
		if ok {
			if e, found := lookupName(rest); found {
				return entry{factor: p.factor * e.factor, dims: e.dims}, true
			}
		}
	}
	return entry{}, false
}

func lookupName(tok string) (entry, bool) {
	if e, ok := names[tok]; ok {
		return e, true
	}
	if n := len(tok); n > 1 && tok[n-1] == 's' {
		if e, ok := names[tok[:n-1]]; ok {
			return e, true
		}
	}
	return entry{}, false
}

func cutPrefix(tok, pre string) (string, bool) {
	if len(tok) > len(pre) && tok[:len(pre)] == pre {
		return tok[len(pre):], true
	}
	return "", false
}
