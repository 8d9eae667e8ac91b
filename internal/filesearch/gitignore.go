package filesearch

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// IgnoreList filters walk results through .gitignore-style rules. Rules
// are applied in file order and the last matching rule wins, so negations
// behave the way git's do.
type IgnoreList struct {
	rules []ignoreRule
}

type ignoreRule struct {
	regex    *regexp.Regexp
	negation bool
	dirOnly  bool
	anchored bool
}

// LoadIgnoreList parses the rules in path. A missing file yields an empty
// list that matches nothing.
func LoadIgnoreList(path string) (*IgnoreList, error) {
	list := &IgnoreList{}
	if path == "" {
		return list, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return list, nil
		}
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if rule, ok := parseRule(line); ok {
			list.rules = append(list.rules, rule)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Matches reports whether the slash-normalized relative path is ignored.
func (l *IgnoreList) Matches(path string, isDir bool) bool {
	if l == nil || len(l.rules) == 0 {
		return false
	}
	path = filepath.ToSlash(path)

	var ignored bool
	for _, r := range l.rules {
		switch {
		case r.dirOnly:
			// A directory rule catches the directory itself and
			// everything inside it.
			if isDir && r.regex.MatchString(path) {
				ignored = !r.negation
			} else if !isDir && r.regex.MatchString(filepath.Dir(path)) {
				ignored = !r.negation
			}
		case r.anchored:
			if r.regex.MatchString(path) {
				ignored = !r.negation
			}
		default:
			if r.regex.MatchString(path) || r.regex.MatchString(filepath.Base(path)) {
				ignored = !r.negation
			}
		}
	}
	return ignored
}

func parseRule(line string) (ignoreRule, bool) {
	var r ignoreRule
	if strings.HasPrefix(line, "!") {
		r.negation = true
		line = line[1:]
	}
	r.anchored = strings.HasPrefix(line, "/")
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	regex, err := regexp.Compile(globToRegex(line))
	if err != nil {
		return ignoreRule{}, false
	}
	r.regex = regex
	return r, true
}

// globToRegex converts one gitignore glob to an anchored regex. Handles
// *, **, ?, character classes, and backslash escapes.
func globToRegex(glob string) string {
	var b strings.Builder

	anchored := strings.HasPrefix(glob, "/")
	if anchored {
		b.WriteString("^")
		glob = glob[1:]
	} else {
		b.WriteString("(^|/)")
	}

	for i := 0; i < len(glob); {
		ch := glob[i]
		switch ch {
		case '*':
			if i+1 < len(glob) && glob[i+1] == '*' {
				if i+2 < len(glob) && glob[i+2] == '/' {
					b.WriteString("(.*/)?")
					i += 3
				} else {
					b.WriteString(".*")
					i += 2
				}
			} else {
				b.WriteString("[^/]*")
				i++
			}
		case '?':
			b.WriteString("[^/]")
			i++
		case '.', '+', '(', ')', '|', '^', '$', '@', '%':
			b.WriteByte('\\')
			b.WriteByte(ch)
			i++
		case '[':
			// Character classes pass through when closed, otherwise the
			// bracket is literal.
			j := i + 1
			for j < len(glob) && glob[j] != ']' {
				j++
			}
			if j < len(glob) {
				b.WriteString(glob[i : j+1])
				i = j + 1
			} else {
				b.WriteString("\\[")
				i++
			}
		case '\\':
			if i+1 < len(glob) {
				b.WriteByte('\\')
				b.WriteByte(glob[i+1])
				i += 2
			} else {
				b.WriteString("\\\\")
				i++
			}
		default:
			b.WriteByte(ch)
			i++
		}
	}

	if anchored {
		b.WriteString("$")
	} else {
		b.WriteString("(/.*)?$")
	}
	return b.String()
}
