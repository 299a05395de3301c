package summarizer

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"

	"textsmith/internal/textutil"
)

const (
	// Texts shorter than this pass through unchanged; frequency scoring is
	// meaningless on a couple of sentences.
	minScorableChars = 100

	concisePositionDecay  = 0.95
	detailedPositionDecay = 0.98

	conciseMinWords  = 30
	conciseMaxWords  = 200
	detailedMinWords = 50
	detailedMaxWords = 500
)

var (
	sentenceEndRe = regexp.MustCompile(`[.!?]+\s+`)
	wordRe        = regexp.MustCompile(`[\p{L}\p{N}]+`)
)

// Extractive is a frequency-based extractive summarizer. It scores sentences
// by normalized word frequency with a position bias and picks the
// best-scoring ones, in original order, under a word cap.
type Extractive struct{}

func NewExtractive() *Extractive {
	return &Extractive{}
}

// Summarize implements Summarizer. The result is deterministic for identical
// input and options.
func (e *Extractive) Summarize(_ context.Context, text string, opts Options) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, nil
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeConcise
	}

	cleaned := textutil.CleanText(text)
	if cleaned == "" {
		cleaned = strings.TrimSpace(text)
	}

	originalLength := textutil.CountWords(text)

	if len(cleaned) < minScorableChars {
		summary := cleaned
		if opts.MaxLength > 0 {
			summary = textutil.Truncate(summary, opts.MaxLength, true)
		}

		return Result{
			Summary:        summary,
			OriginalLength: originalLength,
			SummaryLength:  textutil.CountWords(summary),
		}, nil
	}

	sentences := splitSentences(cleaned)
	if len(sentences) == 0 {
		return Result{
			Summary:        cleaned,
			OriginalLength: originalLength,
			SummaryLength:  textutil.CountWords(cleaned),
		}, nil
	}

	maxWords := opts.MaxLength
	if maxWords <= 0 {
		maxWords = defaultMaxWords(textutil.CountWords(cleaned), mode)
	}

	scores := scoreSentences(sentences, mode)
	summary := selectSentences(sentences, scores, maxWords)

	return Result{
		Summary:        summary,
		OriginalLength: originalLength,
		SummaryLength:  textutil.CountWords(summary),
	}, nil
}

// splitSentences splits text on terminal punctuation followed by whitespace,
// keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	last := 0

	for _, loc := range sentenceEndRe.FindAllStringIndex(text, -1) {
		s := strings.TrimSpace(text[last:loc[1]])
		if s != "" {
			sentences = append(sentences, s)
		}
		last = loc[1]
	}

	if rest := strings.TrimSpace(text[last:]); rest != "" {
		sentences = append(sentences, rest)
	}

	return sentences
}

func defaultMaxWords(wordCount int, mode Mode) int {
	if mode == ModeDetailed {
		return clampWords(wordCount*6/10, detailedMinWords, detailedMaxWords)
	}
	return clampWords(wordCount*3/10, conciseMinWords, conciseMaxWords)
}

func clampWords(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// scoreSentences weights each sentence by the normalized frequency of its
// non-stopword words, softened by sqrt sentence length, then applies a
// position decay. Concise summaries favor the opening sentences harder.
func scoreSentences(sentences []string, mode Mode) []float64 {
	freq := make(map[string]float64)
	for _, sentence := range sentences {
		for _, word := range tokenize(sentence) {
			if _, ok := stopwords[word]; ok {
				continue
			}
			freq[word]++
		}
	}

	maxFreq := 0.0
	for _, f := range freq {
		if f > maxFreq {
			maxFreq = f
		}
	}
	if maxFreq == 0 {
		maxFreq = 1
	}
	for word := range freq {
		freq[word] /= maxFreq
	}

	decay := concisePositionDecay
	if mode == ModeDetailed {
		decay = detailedPositionDecay
	}

	scores := make([]float64, len(sentences))
	for i, sentence := range sentences {
		words := tokenize(sentence)

		var score float64
		for _, word := range words {
			score += freq[word]
		}
		if len(words) > 0 {
			score /= math.Sqrt(float64(len(words)))
		}

		scores[i] = score * math.Pow(decay, float64(i))
	}

	return scores
}

// selectSentences picks the best-scoring sentences that fit under maxWords
// and joins them in original order. When not even one sentence fits, the
// first sentence is truncated to the cap so the cap always holds.
func selectSentences(sentences []string, scores []float64, maxWords int) string {
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	var picked []int
	wordCount := 0

	for _, i := range order {
		n := textutil.CountWords(sentences[i])
		if wordCount+n > maxWords {
			continue
		}

		picked = append(picked, i)
		wordCount += n
	}

	if len(picked) == 0 {
		return textutil.Truncate(sentences[0], maxWords, true)
	}

	sort.Ints(picked)

	parts := make([]string, 0, len(picked))
	for _, i := range picked {
		parts = append(parts, sentences[i])
	}

	return strings.Join(parts, " ")
}

func tokenize(sentence string) []string {
	return wordRe.FindAllString(strings.ToLower(sentence), -1)
}
