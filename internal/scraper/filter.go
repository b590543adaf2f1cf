package scraper

import (
	"net/url"
	"path"
	"strings"
)

type LinkFilter interface {
	Filter(link string) bool
}

// SuffixFilter keeps links whose final path segment ends with Suffix.
type SuffixFilter struct {
	Suffix string
}

func (filter SuffixFilter) Filter(link string) bool {
	u, err := url.Parse(link)
	if err != nil || u.Path == "" {
		return false
	}
	return strings.HasSuffix(path.Base(u.Path), filter.Suffix)
}

// RawURL rewrites a listing href such as /org/repo/blob/main/src/lib.rs into the address that
// serves the file's plain text: the first "blob" segment is dropped and rawBase replaces the host.
func RawURL(rawBase, href string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", err
	}

	segments := strings.Split(strings.TrimPrefix(u.EscapedPath(), "/"), "/")
	for i, segment := range segments {
		if segment == "blob" {
			segments = append(segments[:i], segments[i+1:]...)
			break
		}
	}
	return strings.TrimSuffix(rawBase, "/") + "/" + strings.Join(segments, "/"), nil
}
