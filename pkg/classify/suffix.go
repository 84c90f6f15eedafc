package classify

import "strings"

type suffixRule struct {
	suffix string
	lang   Lang
}

// suffixRules is ordered; the first matching suffix wins.
var suffixRules = []suffixRule{
	{"-py", LangPy},
	{"-dotnet", LangDotnet},
	{"-ts", LangTS},
	{"-java", LangJava},
	{"-rust", LangRust},
}

// SuffixClassifier infers a skill's language from its directory-name suffix.
// Suffix evidence carries no category information, so matches are paired
// with the default category.
type SuffixClassifier struct{}

// NewSuffixClassifier creates a suffix-convention classifier.
func NewSuffixClassifier() *SuffixClassifier {
	return &SuffixClassifier{}
}

// Classify tests the directory name against the ordered suffix table.
func (c *SuffixClassifier) Classify(dirName string) (Classification, bool) {
	for _, rule := range suffixRules {
		if strings.HasSuffix(dirName, rule.suffix) {
			return Classification{Lang: rule.lang, Category: DefaultCategory}, true
		}
	}
	return Classification{}, false
}
