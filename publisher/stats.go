package publisher

import (
	"math"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	log "github.com/sirupsen/logrus"
)

// wordsPerMinute is the reading speed used for the reading-time estimate.
const wordsPerMinute = 200

// PostStats summarizes a generated post next to its requested length.
type PostStats struct {
	Words          int `json:"words"`
	Sentences      int `json:"sentences"`
	ReadingMinutes int `json:"reading_minutes"`
}

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
)

func sentenceTokenizer() *sentences.DefaultSentenceTokenizer {
	tokenizerOnce.Do(func() {
		t, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			log.WithError(err).Warn("[Publisher] sentence tokenizer unavailable, counting lines instead")
			return
		}
		tokenizer = t
	})
	return tokenizer
}

// Analyze counts words and sentences in content. Markdown markers are
// counted as part of the words they touch, which is close enough for an
// estimate.
func Analyze(content string) PostStats {
	words := len(strings.Fields(content))
	if words == 0 {
		return PostStats{}
	}

	count := 0
	if t := sentenceTokenizer(); t != nil {
		for _, s := range t.Tokenize(content) {
			if strings.TrimSpace(s.Text) != "" {
				count++
			}
		}
	} else {
		for _, line := range strings.Split(content, "\n") {
			if strings.TrimSpace(line) != "" {
				count++
			}
		}
	}

	return PostStats{
		Words:          words,
		Sentences:      count,
		ReadingMinutes: int(math.Ceil(float64(words) / wordsPerMinute)),
	}
}
