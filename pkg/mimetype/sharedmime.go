package mimetype

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/gobwas/glob"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/run-mailcap/pkg/types"
)

// defaultGlobWeight is the shared-mime-info weight of a glob without one
const defaultGlobWeight = 50

// globRule is one <glob> element of a shared-mime-info package
type globRule struct {
	mimeType      string
	pattern       string
	weight        int
	caseSensitive bool
	matcher       glob.Glob
}

func (r globRule) matches(name string) bool {
	if !r.caseSensitive {
		name = strings.ToLower(name)
	}
	return r.matcher.Match(name)
}

// loadGlobRules reads every *.xml package in dirs
func loadGlobRules(fsys types.FS, dirs []string, logger zerolog.Logger) []globRule {
	var rules []globRule
	for _, dir := range dirs {
		files, err := fsys.Glob(filepath.Join(dir, "*.xml"))
		if err != nil {
			continue
		}
		for _, path := range files {
			parsed, err := readGlobRules(fsys, path)
			if err != nil {
				logger.Debug().Err(err).Str("path", path).Msg("Skipping shared-mime-info package")
				continue
			}
			rules = append(rules, parsed...)
		}
	}
	return rules
}

func readGlobRules(fsys types.FS, path string) ([]globRule, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return parseGlobRules(data)
}

// parseGlobRules extracts the glob rules of a shared-mime-info document
func parseGlobRules(data []byte) ([]globRule, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	root := doc.SelectElement("mime-info")
	if root == nil {
		return nil, nil
	}

	var rules []globRule
	for _, mimeElem := range root.SelectElements("mime-type") {
		mimeType := mimeElem.SelectAttrValue("type", "")
		if mimeType == "" {
			continue
		}

		for _, globElem := range mimeElem.SelectElements("glob") {
			pattern := globElem.SelectAttrValue("pattern", "")
			if pattern == "" {
				continue
			}

			weight, err := strconv.Atoi(globElem.SelectAttrValue("weight", ""))
			if err != nil {
				weight = defaultGlobWeight
			}
			caseSensitive := globElem.SelectAttrValue("case-sensitive", "") == "true"

			compiled := pattern
			if !caseSensitive {
				compiled = strings.ToLower(pattern)
			}
			matcher, err := glob.Compile(compiled)
			if err != nil {
				continue
			}

			rules = append(rules, globRule{
				mimeType:      mimeType,
				pattern:       pattern,
				weight:        weight,
				caseSensitive: caseSensitive,
				matcher:       matcher,
			})
		}
	}
	return rules, nil
}

// bestGlobMatch returns the type of the heaviest rule matching the base name
// of filename. Equal weights prefer the longer pattern, then the earlier rule.
func bestGlobMatch(rules []globRule, filename string) (string, bool) {
	name := filepath.Base(filename)

	var best *globRule
	for i := range rules {
		rule := &rules[i]
		if !rule.matches(name) {
			continue
		}
		if best == nil ||
			rule.weight > best.weight ||
			(rule.weight == best.weight && len(rule.pattern) > len(best.pattern)) {
			best = rule
		}
	}

	if best == nil {
		return "", false
	}
	return best.mimeType, true
}
