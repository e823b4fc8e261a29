// Package style gates untrusted style strings before they may reach a
// rendering surface. Every validator is a pure allow-list predicate; a
// value that fails must be discarded by the caller in favor of the
// built-in default, never passed through raw.
package style

import (
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Named CSS colors plus the special keywords the widget accepts.
var colorKeywords = map[string]struct{}{
	"aliceblue": {}, "antiquewhite": {}, "aqua": {}, "aquamarine": {},
	"azure": {}, "beige": {}, "bisque": {}, "black": {},
	"blanchedalmond": {}, "blue": {}, "blueviolet": {}, "brown": {},
	"burlywood": {}, "cadetblue": {}, "chartreuse": {}, "chocolate": {},
	"coral": {}, "cornflowerblue": {}, "cornsilk": {}, "crimson": {},
	"cyan": {}, "darkblue": {}, "darkcyan": {}, "darkgoldenrod": {},
	"darkgray": {}, "darkgreen": {}, "darkgrey": {}, "darkkhaki": {},
	"darkmagenta": {}, "darkolivegreen": {}, "darkorange": {},
	"darkorchid": {}, "darkred": {}, "darksalmon": {}, "darkseagreen": {},
	"darkslateblue": {}, "darkslategray": {}, "darkslategrey": {},
	"darkturquoise": {}, "darkviolet": {}, "deeppink": {},
	"deepskyblue": {}, "dimgray": {}, "dimgrey": {}, "dodgerblue": {},
	"firebrick": {}, "floralwhite": {}, "forestgreen": {}, "fuchsia": {},
	"gainsboro": {}, "ghostwhite": {}, "gold": {}, "goldenrod": {},
	"gray": {}, "green": {}, "greenyellow": {}, "grey": {},
	"honeydew": {}, "hotpink": {}, "indianred": {}, "indigo": {},
	"ivory": {}, "khaki": {}, "lavender": {}, "lavenderblush": {},
	"lawngreen": {}, "lemonchiffon": {}, "lightblue": {},
	"lightcoral": {}, "lightcyan": {}, "lightgoldenrodyellow": {},
	"lightgray": {}, "lightgreen": {}, "lightgrey": {}, "lightpink": {},
	"lightsalmon": {}, "lightseagreen": {}, "lightskyblue": {},
	"lightslategray": {}, "lightslategrey": {}, "lightsteelblue": {},
	"lightyellow": {}, "lime": {}, "limegreen": {}, "linen": {},
	"magenta": {}, "maroon": {}, "mediumaquamarine": {},
	"mediumblue": {}, "mediumorchid": {}, "mediumpurple": {},
	"mediumseagreen": {}, "mediumslateblue": {}, "mediumspringgreen": {},
	"mediumturquoise": {}, "mediumvioletred": {}, "midnightblue": {},
	"mintcream": {}, "mistyrose": {}, "moccasin": {}, "navajowhite": {},
	"navy": {}, "oldlace": {}, "olive": {}, "olivedrab": {},
	"orange": {}, "orangered": {}, "orchid": {}, "palegoldenrod": {},
	"palegreen": {}, "paleturquoise": {}, "palevioletred": {},
	"papayawhip": {}, "peachpuff": {}, "peru": {}, "pink": {},
	"plum": {}, "powderblue": {}, "purple": {}, "rebeccapurple": {},
	"red": {}, "rosybrown": {}, "royalblue": {}, "saddlebrown": {},
	"salmon": {}, "sandybrown": {}, "seagreen": {}, "seashell": {},
	"sienna": {}, "silver": {}, "skyblue": {}, "slateblue": {},
	"slategray": {}, "slategrey": {}, "snow": {}, "springgreen": {},
	"steelblue": {}, "tan": {}, "teal": {}, "thistle": {},
	"tomato": {}, "turquoise": {}, "violet": {}, "wheat": {},
	"white": {}, "whitesmoke": {}, "yellow": {}, "yellowgreen": {},
	"transparent": {}, "currentcolor": {},
}

var (
	// 4 and 8 digit hex forms carry an alpha channel go-colorful does
	// not parse, so they are matched directly
	hexAlphaRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{4}|[0-9a-fA-F]{8})$`)

	colorFuncRe = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\(\s*[0-9]+(?:\.[0-9]+)?%?\s*,\s*[0-9]+(?:\.[0-9]+)?%?\s*,\s*[0-9]+(?:\.[0-9]+)?%?\s*(?:,\s*(?:0|1|0?\.[0-9]+)\s*)?\)$`)
)

// IsColor reports whether the value is a syntactically valid CSS color:
// a named keyword, a hex form, or an rgb/rgba/hsl/hsla function.
func IsColor(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}

	if _, ok := colorKeywords[v]; ok {
		return true
	}

	if strings.HasPrefix(v, "#") {
		if hexAlphaRe.MatchString(v) {
			return true
		}
		_, err := colorful.Hex(v)
		return err == nil
	}

	return colorFuncRe.MatchString(v)
}
