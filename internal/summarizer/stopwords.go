package summarizer

import "strings"

// Common English stopwords excluded from frequency scoring so that filler
// words do not dominate sentence weights.
const stopwordList = "a an the and but if or because as until while of at by " +
	"for with about against between into through during before after above " +
	"below to from up down in out on off over under again further then once " +
	"here there when where why how all any both each few more most other " +
	"some such no nor not only own same so than too very s t can will just " +
	"don don't should now d ll m o re ve y ain aren aren't couldn couldn't " +
	"didn didn't doesn doesn't hadn hadn't hasn hasn't haven haven't isn " +
	"isn't ma mightn mightn't mustn mustn't needn needn't shan shan't " +
	"shouldn shouldn't wasn wasn't weren weren't won won't wouldn wouldn't"

var stopwords = func() map[string]struct{} {
	words := strings.Fields(stopwordList)
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
