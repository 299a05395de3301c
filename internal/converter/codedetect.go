package converter

import (
	"regexp"
	"strings"
)

// codeScoreThreshold is the minimum weight at which a paragraph is treated
// as a code block rather than prose.
const codeScoreThreshold = 5

// codeConstructRe matches language constructs in their syntactic shape
// (definition headers, imports, colon-terminated control flow) rather than
// bare keywords, so prose containing "for" or "if" is not mistaken for code.
var (
	codeConstructRe = regexp.MustCompile(
		`(?m)\b(def|function)\s+\w+\s*\(` +
			`|\bclass\s+\w+\s*[:({]` +
			`|^\s*(import|from)\s+[\w.]` +
			`|\b(if|for|while|try|except)\b[^\n]*:\s*$`)
	assignmentRe   = regexp.MustCompile(`[a-zA-Z_][a-zA-Z0-9_]*\s*=\s*`)
	codePunctRe    = regexp.MustCompile(`[{}\[\]();]`)
	indentedLineRe = regexp.MustCompile(`^\s{2,}`)
	codeCommentRe  = regexp.MustCompile(`(?m)^\s*(#|//|/\*|\*)`)
	methodCallRe   = regexp.MustCompile(`[a-zA-Z_][a-zA-Z0-9_]*\.[a-zA-Z_][a-zA-Z0-9_]*\s*\(`)
	codeKeywordRes = compileKeywordRes()
)

var codeKeywords = []string{
	"return", "print", "var", "let", "const", "async", "await",
	"public", "private", "static", "void", "int", "float", "string", "bool",
	"True", "False", "None", "null", "undefined", "this", "self",
	"lambda", "map", "filter", "reduce",
}

func compileKeywordRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(codeKeywords))
	for _, kw := range codeKeywords {
		res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	return res
}

// isCodeBlock scores a paragraph for code-likeness. Each structural signal
// contributes a weight; the paragraph counts as code once the total reaches
// codeScoreThreshold.
func isCodeBlock(text string, lines []string) bool {
	score := 0

	if codeConstructRe.MatchString(text) {
		score += 5
	}
	if assignmentRe.MatchString(text) {
		score += 3
	}
	if codePunctRe.MatchString(text) {
		score += 2
	}
	for _, line := range lines {
		if indentedLineRe.MatchString(line) {
			score += 3
			break
		}
	}
	for _, re := range codeKeywordRes {
		if re.MatchString(text) {
			score++
		}
	}
	if codeCommentRe.MatchString(text) {
		score += 3
	}
	if methodCallRe.MatchString(text) {
		score += 4
	}
	if len(lines) >= 2 &&
		strings.Contains(text, "=") &&
		strings.Contains(text, ".") {
		score += 2
	}

	return score >= codeScoreThreshold
}

var (
	pyLangRe        = regexp.MustCompile(`\b(def|class|import|from|if __name__|print)\b`)
	pyColonEndRe    = regexp.MustCompile(`(?m):\s*$`)
	jsLangRe        = regexp.MustCompile(`\b(function|const|let|var|export|import from|=>)`)
	jsSemicolonRe   = regexp.MustCompile(`(?m);\s*$`)
	tsLangRe        = regexp.MustCompile(`\b(interface|type)\b|<T>|:\s*(string|number|boolean)\b`)
	htmlPairedTagRe = regexp.MustCompile(`(?s)<[a-zA-Z]+[^>]*>.*?</[a-zA-Z]+>`)
	htmlSelfCloseRe = regexp.MustCompile(`<[a-zA-Z]+[^>]*/>`)
	cssRuleRe       = regexp.MustCompile(`(?s)[a-zA-Z-]+\s*\{\s*[a-zA-Z-]+\s*:\s*[^;]+;\s*\}`)
	classBodyRe     = regexp.MustCompile(`\b(public|private|class|static|void)\b`)
	braceEndRe      = regexp.MustCompile(`(?m)\{\s*$`)
	javaLangRe      = regexp.MustCompile(`System\.out\.println|String\[\]|\bargs\b`)
	csharpLangRe    = regexp.MustCompile(`\b(Console|WriteLine|namespace|using System)\b`)
	cLangRe         = regexp.MustCompile(`\b(include|printf|scanf|malloc|int main|void main)\b`)
	cppLangRe       = regexp.MustCompile(`std::|\b(cout|cin|vector|string)\b`)
	sqlLangRe       = regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|FROM|WHERE|JOIN)\b`)
	bashLangRe      = regexp.MustCompile(`\b(chmod|chown|sudo|apt|yum|brew)\b`)
)

// detectLanguage guesses the fence tag for a detected code block. Returns an
// empty tag when no language stands out.
func detectLanguage(text string) string {
	if pyLangRe.MatchString(text) || pyColonEndRe.MatchString(text) {
		return "py"
	}

	if jsLangRe.MatchString(text) || jsSemicolonRe.MatchString(text) {
		if tsLangRe.MatchString(text) {
			return "ts"
		}
		return "js"
	}

	if htmlPairedTagRe.MatchString(text) || htmlSelfCloseRe.MatchString(text) {
		return "html"
	}

	if cssRuleRe.MatchString(text) {
		return "css"
	}

	if classBodyRe.MatchString(text) && braceEndRe.MatchString(text) {
		if javaLangRe.MatchString(text) {
			return "java"
		}
		if csharpLangRe.MatchString(text) {
			return "csharp"
		}
	}

	if cLangRe.MatchString(text) {
		if cppLangRe.MatchString(text) {
			return "cpp"
		}
		return "c"
	}

	if sqlLangRe.MatchString(text) {
		return "sql"
	}

	if strings.HasPrefix(text, "$") ||
		strings.HasPrefix(text, "#!") ||
		bashLangRe.MatchString(text) {
		return "bash"
	}

	return ""
}
