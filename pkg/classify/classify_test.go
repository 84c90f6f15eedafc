package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubClassifier struct {
	cl Classification
	ok bool
}

func (s stubClassifier) Classify(string) (Classification, bool) {
	return s.cl, s.ok
}

func TestResolverFirstMatchWins(t *testing.T) {
	first := stubClassifier{cl: Classification{Lang: LangJava, Category: "storage"}, ok: true}
	second := stubClassifier{cl: Classification{Lang: LangPy, Category: DefaultCategory}, ok: true}

	resolver := NewResolver(first, second)
	cl := resolver.Resolve("azure-storage-blob-py")

	assert.Equal(t, LangJava, cl.Lang)
	assert.Equal(t, "storage", cl.Category)
}

func TestResolverFallsThroughDecliningClassifiers(t *testing.T) {
	declining := stubClassifier{ok: false}
	matching := stubClassifier{cl: Classification{Lang: LangTS, Category: "networking"}, ok: true}

	resolver := NewResolver(declining, matching)
	cl := resolver.Resolve("some-skill")

	assert.Equal(t, LangTS, cl.Lang)
	assert.Equal(t, "networking", cl.Category)
}

func TestResolverDefault(t *testing.T) {
	t.Run("empty chain", func(t *testing.T) {
		cl := NewResolver().Resolve("anything")
		assert.Equal(t, LangCore, cl.Lang)
		assert.Equal(t, DefaultCategory, cl.Category)
	})

	t.Run("all classifiers decline", func(t *testing.T) {
		cl := NewResolver(stubClassifier{}, stubClassifier{}).Resolve("anything")
		assert.Equal(t, LangCore, cl.Lang)
		assert.Equal(t, DefaultCategory, cl.Category)
	})
}

func TestSuffixClassifier(t *testing.T) {
	classifier := NewSuffixClassifier()

	tests := []struct {
		dirName  string
		lang     Lang
		expected bool
	}{
		{"azure-storage-blob-py", LangPy, true},
		{"azure-storage-dotnet", LangDotnet, true},
		{"azure-storage-blob-ts", LangTS, true},
		{"azure-storage-java", LangJava, true},
		{"azure-storage-rust", LangRust, true},
		{"podcast-generation", "", false},
		{"py-helpers", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.dirName, func(t *testing.T) {
			cl, ok := classifier.Classify(tt.dirName)
			assert.Equal(t, tt.expected, ok)
			if ok {
				assert.Equal(t, tt.lang, cl.Lang)
				assert.Equal(t, DefaultCategory, cl.Category)
			}
		})
	}
}
