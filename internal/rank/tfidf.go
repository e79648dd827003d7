// Package rank scores candidate titles against a query by term-frequency
// weighted lexical similarity.
package rank

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches word tokens of at least two characters
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Similarities fits a TF-IDF vectorizer jointly on the query and the
// candidate texts and returns the cosine similarity of the query against each
// candidate, in candidate order. The result length always equals
// len(candidates); unmatchable candidates score 0.
func Similarities(query string, candidates []string) []float64 {
	docs := make([]string, 0, len(candidates)+1)
	docs = append(docs, query)
	docs = append(docs, candidates...)

	vectors := vectorize(docs)

	sims := make([]float64, len(candidates))
	for i := range candidates {
		sims[i] = dot(vectors[0], vectors[i+1])
	}
	return sims
}

// vectorize builds smooth-idf, L2-normalized TF-IDF vectors for the corpus.
// Rows come back as sparse term->weight maps; with unit rows, cosine
// similarity reduces to a dot product.
func vectorize(docs []string) []map[string]float64 {
	n := len(docs)
	counts := make([]map[string]float64, n)
	df := make(map[string]int)

	for i, doc := range docs {
		counts[i] = termCounts(doc)
		for term := range counts[i] {
			df[term]++
		}
	}

	idf := make(map[string]float64, len(df))
	for term, d := range df {
		idf[term] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	vectors := make([]map[string]float64, n)
	for i, tc := range counts {
		vec := make(map[string]float64, len(tc))
		var norm float64
		for term, count := range tc {
			w := count * idf[term]
			vec[term] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range vec {
				vec[term] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

func termCounts(doc string) map[string]float64 {
	tc := make(map[string]float64)
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(doc), -1) {
		tc[tok]++
	}
	return tc
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, w := range a {
		sum += w * b[term]
	}
	return sum
}
