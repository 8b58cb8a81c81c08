package common

import (
	"path"
	"slices"
	"strings"
)

// DefaultExtensions is the visible extension allow-list in resolution order.
var DefaultExtensions = []string{".md", ".json", ".txt", ".sh", ".py", ".js", ".ts"}

// StripExtension removes the last extension of name when it is one of exts.
// Any other name is returned unchanged.
func StripExtension(name string, exts []string) string {
	ext := path.Ext(name)
	if ext == "" || !slices.Contains(exts, ext) {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// HasSupportedExtension reports whether name ends in one of exts.
func HasSupportedExtension(name string, exts []string) bool {
	ext := path.Ext(name)
	return ext != "" && slices.Contains(exts, ext)
}

// AncestorChain returns every "/" prefix of p, root first and p itself last.
//
//	AncestorChain("a/b/c") == []string{"a", "a/b", "a/b/c"}
func AncestorChain(p string) []string {
	segments := SplitPathSegments(p)
	chain := make([]string, 0, len(segments))
	for i := range segments {
		chain = append(chain, strings.Join(segments[:i+1], "/"))
	}
	return chain
}

// SplitPathSegments splits a slash path into its non-empty segments.
// "." segments are dropped; ".." is kept so callers can reject it.
func SplitPathSegments(p string) []string {
	parts := strings.Split(strings.ReplaceAll(p, "\\", "/"), "/")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s == "" || s == "." {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ValidateUserPath checks that a logical path supplied by a caller stays
// inside whatever root it is joined to.
func ValidateUserPath(p string) error {
	if strings.TrimSpace(p) == "" {
		return ErrPathEmpty
	}
	if len(p) > MaxPathLength {
		return ErrPathTooLong
	}
	if strings.ContainsRune(p, '\x00') {
		return ErrPathInvalid
	}
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, "\\") || hasDrivePrefix(p) {
		return ErrPathAbsolute
	}
	for _, seg := range SplitPathSegments(p) {
		if seg == ".." {
			return ErrPathEscapesRoot
		}
	}
	return nil
}

// hasDrivePrefix reports a Windows drive path: one ASCII letter, a colon and
// a separator.
func hasDrivePrefix(p string) bool {
	if len(p) < 3 || p[1] != ':' || (p[2] != '/' && p[2] != '\\') {
		return false
	}
	c := p[0] | 0x20
	return c >= 'a' && c <= 'z'
}

// PathUtils binds the path helpers to one extension allow-list
type PathUtils struct {
	extensions []string
}

// NewPathUtils creates a PathUtils for exts, or DefaultExtensions when none are given
func NewPathUtils(exts ...string) *PathUtils {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(normalized, ext) {
			normalized = append(normalized, ext)
		}
	}
	return &PathUtils{extensions: normalized}
}

// Extensions returns a copy of the allow-list in declaration order.
func (pu *PathUtils) Extensions() []string {
	return slices.Clone(pu.extensions)
}

// IsSupportedFile reports whether name carries an allowed extension
func (pu *PathUtils) IsSupportedFile(name string) bool {
	return HasSupportedExtension(name, pu.extensions)
}

// StripExtension removes an allowed extension from name
func (pu *PathUtils) StripExtension(name string) string {
	return StripExtension(name, pu.extensions)
}

// CandidateNames lists rel with every allowed extension appended, in order.
func (pu *PathUtils) CandidateNames(rel string) []string {
	names := make([]string, 0, len(pu.extensions))
	for _, ext := range pu.extensions {
		names = append(names, rel+ext)
	}
	return names
}
