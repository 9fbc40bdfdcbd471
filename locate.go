package restring

import (
	"strings"

	"github.com/charlievieth/strcase"
)

// Find returns the offset of the first match of c in s, or NotFound.
//
// Example:
//
//	restring.Find("hello world", restring.Expr(`\s+`)) // 5
func Find(s string, c Criterion) int {
	return find(s, c, 0)
}

// FindIn is Find restricted to s[start:end]. The result is an offset into s.
// The region is searched as if it were the whole text, so ^, $ and \b treat
// start and end as text edges.
// An empty region never matches, even for criteria that match "".
func FindIn(s string, c Criterion, start, end int) (int, error) {
	if err := checkBounds("find", s, start, end); err != nil {
		return NotFound, err
	}
	return find(s[start:end], c, start), nil
}

// RFind returns the highest offset at which a match of c starts in s, or
// NotFound.
//
// For patterns every match is enumerated and the largest start wins: matches
// have varying lengths, so a backward probe cannot find the rightmost start.
//
// Example:
//
//	restring.RFind("I have 3 apples", restring.Expr(`\s+`)) // 8
func RFind(s string, c Criterion) int {
	return rfind(s, c, 0)
}

// RFindIn is RFind restricted to s[start:end].
// The region is searched as if it were the whole text, so ^, $ and \b treat
// start and end as text edges.
func RFindIn(s string, c Criterion, start, end int) (int, error) {
	if err := checkBounds("rfind", s, start, end); err != nil {
		return NotFound, err
	}
	return rfind(s[start:end], c, start), nil
}

// Index is Find reporting a *NotFoundError instead of NotFound.
func Index(s string, c Criterion) (int, error) {
	return IndexIn(s, c, 0, len(s))
}

// IndexIn is FindIn reporting a *NotFoundError instead of NotFound.
// The region is searched as if it were the whole text, so ^, $ and \b treat
// start and end as text edges.
func IndexIn(s string, c Criterion, start, end int) (int, error) {
	if err := checkBounds("index", s, start, end); err != nil {
		return NotFound, err
	}
	i := find(s[start:end], c, start)
	if i == NotFound {
		return NotFound, &NotFoundError{Op: "index"}
	}
	return i, nil
}

// RIndex is RFind reporting a *NotFoundError instead of NotFound.
func RIndex(s string, c Criterion) (int, error) {
	return RIndexIn(s, c, 0, len(s))
}

// RIndexIn is RFindIn reporting a *NotFoundError instead of NotFound.
// The region is searched as if it were the whole text, so ^, $ and \b treat
// start and end as text edges.
func RIndexIn(s string, c Criterion, start, end int) (int, error) {
	if err := checkBounds("rindex", s, start, end); err != nil {
		return NotFound, err
	}
	i := rfind(s[start:end], c, start)
	if i == NotFound {
		return NotFound, &NotFoundError{Op: "rindex"}
	}
	return i, nil
}

// find locates the first match of c in region, which starts at offset off of
// the subject.
func find(region string, c Criterion, off int) int {
	if region == "" {
		return NotFound
	}

	var i int
	switch {
	case c.kind == KindPattern:
		loc := c.pat.re.FindStringIndex(region)
		if loc == nil {
			return NotFound
		}
		i = loc[0]
	case c.fold:
		i = strcase.Index(region, c.lit)
	default:
		i = strings.Index(region, c.lit)
	}
	if i < 0 {
		return NotFound
	}
	return off + i
}

// rfind locates the highest match start of c in region.
func rfind(region string, c Criterion, off int) int {
	if region == "" {
		return NotFound
	}

	i := NotFound
	switch {
	case c.kind == KindPattern:
		for _, loc := range c.pat.re.FindAllStringIndex(region, -1) {
			i = max(i, loc[0])
		}
	case c.fold:
		i = strcase.LastIndex(region, c.lit)
	default:
		i = strings.LastIndex(region, c.lit)
	}
	if i < 0 {
		return NotFound
	}
	return off + i
}
