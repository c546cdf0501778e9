package matcher

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// TF-IDF词法向量化器。与稠密向量互补：稠密向量抓语义，
// 词法向量抓岗位描述和简历中的字面术语重叠。
// 词表在 Fit 时固定，Transform 对词表外的词直接忽略。

var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

// englishStopWords 英文停用词表，分词后在构建n-gram之前过滤
var englishStopWords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "also", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before", "being",
		"below", "between", "both", "but", "by", "can", "cannot", "could", "did", "do",
		"does", "doing", "down", "during", "each", "few", "for", "from", "further",
		"had", "has", "have", "having", "he", "her", "here", "hers", "herself", "him",
		"himself", "his", "how", "i", "if", "in", "into", "is", "it", "its", "itself",
		"me", "more", "most", "my", "myself", "no", "nor", "not", "of", "off", "on",
		"once", "only", "or", "other", "our", "ours", "ourselves", "out", "over", "own",
		"same", "she", "should", "so", "some", "such", "than", "that", "the", "their",
		"theirs", "them", "themselves", "then", "there", "these", "they", "this",
		"those", "through", "to", "too", "under", "until", "up", "very", "was", "we",
		"were", "what", "when", "where", "which", "while", "who", "whom", "why", "will",
		"with", "would", "you", "your", "yours", "yourself", "yourselves",
	}
	for _, w := range words {
		englishStopWords[w] = struct{}{}
	}
}

// TFIDFVectorizer 一元+二元词组的TF-IDF向量化器，idf使用平滑公式。
// 非并发安全：Fit 之后只读使用。
type TFIDFVectorizer struct {
	maxFeatures int
	vocabulary  map[string]int
	idf         []float64
}

// NewTFIDFVectorizer 创建向量化器。maxFeatures<=0 表示不限制词表大小。
func NewTFIDFVectorizer(maxFeatures int) *TFIDFVectorizer {
	return &TFIDFVectorizer{maxFeatures: maxFeatures}
}

// tokenize 小写化后按词切分、过滤停用词，再拼接一元和二元词组
func tokenize(doc string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(doc), -1)
	filtered := raw[:0]
	for _, tok := range raw {
		if _, stop := englishStopWords[tok]; !stop {
			filtered = append(filtered, tok)
		}
	}
	terms := make([]string, 0, len(filtered)*2)
	terms = append(terms, filtered...)
	for i := 0; i+1 < len(filtered); i++ {
		terms = append(terms, filtered[i]+" "+filtered[i+1])
	}
	return terms
}

// Fit 在语料上构建词表并计算idf。
// idf采用平滑形式 ln((1+n)/(1+df))+1；词表超出maxFeatures时
// 按语料内总词频取前maxFeatures个，频次相同按字典序。
func (v *TFIDFVectorizer) Fit(docs []string) {
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range tokenize(doc) {
			termFreq[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	terms := make([]string, 0, len(termFreq))
	for term := range termFreq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termFreq[terms[i]] != termFreq[terms[j]] {
			return termFreq[terms[i]] > termFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if v.maxFeatures > 0 && len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}
	// 词表内部按字典序编号，保证向量维度顺序确定
	sort.Strings(terms)

	n := float64(len(docs))
	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
}

// Transform 把文档转为L2归一化的TF-IDF向量。词表外的词忽略。
func (v *TFIDFVectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, term := range tokenize(doc) {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx] += v.idf[idx]
		}
	}
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
