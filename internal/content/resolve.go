package content

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Context carries the caller's variables for one generation run
// (crystal, chakra, season, month, zodiac, benefit).
type Context map[string]string

var placeholderRegex = regexp.MustCompile(`\{([a-z_]+)\}`)

// Resolved is a template with every placeholder it could bind filled in.
type Resolved struct {
	Template Template

	// Vars holds caller variables plus derived ones (color, element, energy, season, month, year).
	Vars map[string]string

	Title           string
	Keywords        []string
	Sections        []string
	MetaDescription string

	// Unresolved lists placeholders left literally in the output, sorted and deduplicated.
	Unresolved []string

	// Warnings notes caller values that were not recognized and were replaced or left raw.
	Warnings []string
}

// Primary returns the value of the template's primary variable, or "" if unbound.
func (r *Resolved) Primary() string {
	return r.Vars[r.Template.PrimaryVar]
}

// Resolve binds ctx into t's title, keyword, meta and section patterns.
// Placeholders with no value are kept as-is and reported in Unresolved.
// now supplies month, year and season when the caller leaves them out.
func Resolve(t Template, ctx Context, now time.Time) *Resolved {
	vars, warnings := deriveVars(t, ctx, now)

	missing := map[string]bool{}
	fill := func(pattern string) string {
		return placeholderRegex.ReplaceAllStringFunc(pattern, func(tok string) string {
			name := tok[1 : len(tok)-1]
			if v, ok := vars[name]; ok {
				return v
			}
			missing[name] = true
			return tok
		})
	}

	r := &Resolved{
		Template:        t,
		Vars:            vars,
		Title:           fill(t.TitlePattern),
		MetaDescription: fill(t.MetaPattern),
		Warnings:        warnings,
	}
	for _, k := range t.KeywordPatterns {
		r.Keywords = append(r.Keywords, fill(k))
	}
	for _, s := range t.Sections {
		r.Sections = append(r.Sections, fill(s))
	}

	for name := range missing {
		r.Unresolved = append(r.Unresolved, "{"+name+"}")
	}
	slices.Sort(r.Unresolved)
	return r
}

func deriveVars(t Template, ctx Context, now time.Time) (map[string]string, []string) {
	var warnings []string
	vars := make(map[string]string, len(ctx)+6)
	for k, v := range ctx {
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		if k != "" && v != "" {
			vars[k] = v
		}
	}

	month := now.Month()
	if raw, ok := vars["month"]; ok {
		if m, ok := ParseMonth(raw); ok {
			month = m
		} else {
			warnings = append(warnings, "unrecognized month "+strconv.Quote(raw)+", using "+month.String())
		}
	}
	vars["month"] = month.String()
	if _, ok := vars["year"]; !ok {
		vars["year"] = strconv.Itoa(now.Year())
	}

	season, ok := LookupSeason(vars["season"])
	if !ok {
		season = SeasonFor(month)
		if raw, given := vars["season"]; given {
			warnings = append(warnings, "unrecognized season "+strconv.Quote(raw)+", using "+season.Name)
		}
	}
	vars["season"] = season.Name
	vars["energy"] = season.Energy

	if name, ok := vars["chakra"]; ok {
		if c, found := LookupChakra(name); found {
			vars["chakra"] = c.Name
			vars["color"] = c.Color
			vars["element"] = c.Element
		} else {
			warnings = append(warnings, "unrecognized chakra "+strconv.Quote(name))
		}
	}

	if _, ok := vars["zodiac"]; !ok {
		vars["zodiac"] = ZodiacFor(month)
	}
	if t.Archetype == BirthstoneGuide {
		if _, ok := vars["crystal"]; !ok {
			vars["crystal"] = BirthstoneFor(month)
		}
	}
	return vars, warnings
}

// Defaults fills the variables an archetype needs from the clock alone,
// for unattended runs where no caller supplies a subject.
// Values already present in ctx are kept.
func Defaults(a Archetype, ctx Context, now time.Time) Context {
	out := Context{}
	for k, v := range ctx {
		out[k] = v
	}
	setDefault := func(k, v string) {
		if strings.TrimSpace(out[k]) == "" {
			out[k] = v
		}
	}

	season := SeasonFor(now.Month())
	switch a {
	case ChakraGuide:
		setDefault("chakra", chakras[int(now.Month()-1)%len(chakras)].Name)
	case CrystalGuide, HowToGuide:
		setDefault("crystal", season.Stones[0])
		setDefault("benefit", season.Energy)
	}
	return out
}
