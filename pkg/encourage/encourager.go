// Package encourage selects encouragement sentences at repetition
// milestones. Actually speaking them is an external concern; the
// package hands sentences to an Announcer and knows nothing about
// audio or messaging.
package encourage

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rehazenter/go-rehab/internal/log"
)

//go:embed data/encouragement_sentences.txt
var embedded embed.FS

// sentenceCount is how many milestone sentences a sentence file must
// carry: halfway, one-to-go, done.
const sentenceCount = 3

// Announcer receives sentences to relay to the patient.
type Announcer interface {
	Say(sentence string)
}

// LogAnnouncer logs sentences instead of speaking them. It is the
// default when no speech collaborator is wired in.
type LogAnnouncer struct{}

// Say implements Announcer.
func (LogAnnouncer) Say(sentence string) {
	log.Info("encourager", "say", sentence)
}

// Encourager announces the running repetition count and milestone
// sentences at the halfway point, at one repetition to go, and on
// completion.
type Encourager struct {
	limit     int
	sentences []string
	announcer Announcer
}

// New creates an encourager with the embedded sentence set.
func New(limit int, a Announcer) (*Encourager, error) {
	data, err := embedded.ReadFile("data/encouragement_sentences.txt")
	if err != nil {
		return nil, fmt.Errorf("encourage: embedded sentences: %w", err)
	}
	return build(limit, a, string(data))
}

// NewFromFile creates an encourager with a custom sentence file,
// one sentence per line.
func NewFromFile(limit int, a Announcer, path string) (*Encourager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("encourage: read sentences: %w", err)
	}
	return build(limit, a, string(data))
}

func build(limit int, a Announcer, raw string) (*Encourager, error) {
	if limit < 1 {
		return nil, errors.New("encourage: repetition limit must be positive")
	}
	if a == nil {
		a = LogAnnouncer{}
	}
	var sentences []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			sentences = append(sentences, line)
		}
	}
	if len(sentences) < sentenceCount {
		return nil, fmt.Errorf("encourage: need %d sentences, got %d", sentenceCount, len(sentences))
	}
	return &Encourager{limit: limit, sentences: sentences, announcer: a}, nil
}

// Say relays an arbitrary sentence.
func (e *Encourager) Say(sentence string) {
	e.announcer.Say(sentence)
}

// RepetitionDone announces the new count and, when the count lands on a
// milestone, the matching sentence.
func (e *Encourager) RepetitionDone(count int) {
	e.announcer.Say(strconv.Itoa(count))
	switch count {
	case e.limit / 2:
		e.announcer.Say(e.sentences[0])
	case e.limit - 1:
		e.announcer.Say(e.sentences[1])
	case e.limit:
		e.announcer.Say(e.sentences[2])
	}
}
