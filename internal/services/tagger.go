package services

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// TaggedToken is one token of linguistic annotation: its surface text, its
// Penn Treebank part-of-speech tag, and whether it is an English stopword.
type TaggedToken struct {
	Text     string
	Tag      string
	Stopword bool
}

// TaggerService provides part-of-speech tagging. It is constructed once at
// process start and is safe for read-only reuse across analysis runs.
type TaggerService interface {
	Tag(text string) ([]TaggedToken, error)
}

type proseTagger struct{}

// NewProseTagger builds the tagging service and verifies the underlying
// linguistic model by tagging a probe sentence. A failure here is a fatal
// configuration error: no analysis can run without the model.
func NewProseTagger() (TaggerService, error) {
	t := &proseTagger{}
	if _, err := t.Tag("software engineer resume"); err != nil {
		return nil, fmt.Errorf("failed to load tagging model: %w", err)
	}
	return t, nil
}

func (t *proseTagger) Tag(text string) ([]TaggedToken, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}

	tokens := doc.Tokens()
	tagged := make([]TaggedToken, 0, len(tokens))
	for _, tok := range tokens {
		tagged = append(tagged, TaggedToken{
			Text:     tok.Text,
			Tag:      tok.Tag,
			Stopword: IsStopword(tok.Text),
		})
	}

	return tagged, nil
}

// IsNounTag reports whether a Penn Treebank tag denotes a common or proper
// noun (NN, NNS, NNP, NNPS).
func IsNounTag(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

// IsStopword reports whether a token is an English function word excluded
// from keyword analysis.
func IsStopword(token string) bool {
	_, ok := stopwords[strings.ToLower(token)]
	return ok
}

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(stopwordList) {
		stopwords[w] = struct{}{}
	}
}

// English stopword vocabulary, Snowball list plus common contractions.
const stopwordList = `
i me my myself we our ours ourselves you your yours yourself yourselves
he him his himself she her hers herself it its itself they them their
theirs themselves what which who whom this that these those am is are was
were be been being have has had having do does did doing a an the and but
if or because as until while of at by for with about against between into
through during before after above below to from up down in out on off
over under again further then once here there when where why how all any
both each few more most other some such no nor not only own same so than
too very s t can will just don should now d ll m o re ve y ain aren
couldn didn doesn hadn hasn haven isn ma mightn mustn needn shan shouldn
wasn weren won wouldn
`
