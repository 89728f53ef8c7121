// Package remotes parses raw remote-listing text (the `git remote -v`
// output format) into structured remote descriptors.
package remotes

import (
	"regexp"
	"strings"

	"github.com/tsoliangwu0130/revlens/domain"
)

// linePattern matches one "<name>\t<url> (<capability>)" listing line.
var linePattern = regexp.MustCompile(`^(.+)\t(.+) \((.+)\)$`)

// urlPatterns are the recognized connection-string shapes, tried in order;
// the first match wins. Each captures (host, path).
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^git://([^/]+)/(.+)$`),
	regexp.MustCompile(`^https://([^/]+)/(.+)$`),
	regexp.MustCompile(`^http://([^/]+)/(.+)$`),
	regexp.MustCompile(`^[^@/]+@([^:/]+):(.+)$`), // SSH shorthand, no scheme
	regexp.MustCompile(`^ssh://(?:[^@/]+@)?([^:/]+)(?::\d+)?/(.+)$`),
}

// vcsSuffixPattern strips a trailing ".git", optionally followed by a
// single "/", from a resource path.
var vcsSuffixPattern = regexp.MustCompile(`\.git/?$`)

// Parse turns raw listing text into descriptors. Lines that do not match
// the listing grammar are skipped; two lines sharing a URL merge into one
// descriptor whose capability list grows in order of appearance. Parse
// never fails: empty input yields an empty result.
func Parse(rawListing, repoPath string) []domain.RemoteDescriptor {
	if rawListing == "" {
		return nil
	}

	var descriptors []domain.RemoteDescriptor
	byURL := make(map[string]int) // url -> index into descriptors

	for _, line := range strings.Split(rawListing, "\n") {
		match := linePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		name, url, capability := match[1], match[2], match[3]

		if i, seen := byURL[url]; seen {
			descriptors[i].Capabilities = append(descriptors[i].Capabilities, capability)
			continue
		}

		host, resourcePath := Decompose(url)
		byURL[url] = len(descriptors)
		descriptors = append(descriptors, domain.RemoteDescriptor{
			RepoPath:     repoPath,
			Name:         name,
			URL:          url,
			Host:         host,
			ResourcePath: resourcePath,
			Capabilities: []string{capability},
		})
	}

	return descriptors
}

// Decompose extracts the network authority and resource path from a remote
// connection string. Unrecognized shapes yield ("", ""), never an error.
func Decompose(url string) (host, resourcePath string) {
	for _, pattern := range urlPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1], vcsSuffixPattern.ReplaceAllString(match[2], "")
		}
	}
	return "", ""
}
