package scaffold

import (
	"fmt"
	"regexp"
	"strings"
)

// BadgeMarker identifies a README that already carries the badge block.
const BadgeMarker = "img.shields.io/npm/v/"

var (
	lineBreak = regexp.MustCompile(`\r?\n`)
	heading   = regexp.MustCompile(`^#\s+`)
)

// BadgeBlock renders the README status badges for an npm package published
// from github.com/<owner>/<repo>. The block ends with a blank line.
func BadgeBlock(pkg, owner, repo string) string {
	return strings.Join([]string{
		fmt.Sprintf("[![Install](https://img.shields.io/badge/Install-npm%%20i%%20--g%%20%s-CB3837?logo=npm)](https://www.npmjs.com/package/%s)", pkg, pkg),
		fmt.Sprintf("[![npm](https://img.shields.io/npm/v/%s?logo=npm)](https://www.npmjs.com/package/%s)", pkg, pkg),
		fmt.Sprintf("[![Publish](https://img.shields.io/github/actions/workflow/status/%s/%s/publish.yml?branch=main&logo=github)](https://github.com/%s/%s/actions/workflows/publish.yml)", owner, repo, owner, repo),
		fmt.Sprintf("[![Install size](https://packagephobia.com/badge?p=%s)](https://packagephobia.com/result?p=%s)", pkg, pkg),
		fmt.Sprintf("[![Downloads](https://img.shields.io/npm/dm/%s)](https://www.npmjs.com/package/%s)", pkg, pkg),
		fmt.Sprintf("[![License](https://img.shields.io/github/license/%s/%s)](https://github.com/%s/%s/blob/main/LICENSE)", owner, repo, owner, repo),
	}, "\n") + "\n\n"
}

// NewReadme returns the content of a fresh README.
func NewReadme(name, block string) string {
	return "# " + name + "\n\n" + block
}

// InsertBadges inserts block into an existing README right after the first
// top-level heading line, or prepends it when there is no heading. It reports
// false and returns current unchanged when the marker is already present.
//
// Headings inside code fences are not special-cased.
func InsertBadges(current, block string) (string, bool) {
	if strings.Contains(current, BadgeMarker) {
		return current, false
	}

	lines := lineBreak.Split(current, -1)
	for i, l := range lines {
		if !heading.MatchString(l) {
			continue
		}
		out := make([]string, 0, len(lines)+2)
		out = append(out, lines[:i+1]...)
		out = append(out, "", block)
		out = append(out, lines[i+1:]...)
		return strings.Join(out, "\n"), true
	}
	return block + current, true
}
