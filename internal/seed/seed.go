// Package seed loads question banks from YAML or JSON files.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/question"
	"gopkg.in/yaml.v3"
)

type Entry struct {
	Category      string `yaml:"category"`
	QuestionTitle string `yaml:"question_title"`
	Option1       string `yaml:"option1"`
	Option2       string `yaml:"option2"`
	Option3       string `yaml:"option3"`
	Option4       string `yaml:"option4"`
	RightAnswer   string `yaml:"right_answer"`
}

type bankFile struct {
	Questions []Entry `yaml:"questions"`
}

// Decode reads either a top-level list of entries or a document with a
// "questions" key. JSON input is accepted since it is valid YAML.
func Decode(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var entries []Entry
		if err := doc.Decode(&entries); err != nil {
			return nil, fmt.Errorf("decode question list: %w", err)
		}
		return entries, nil
	}

	var bank bankFile
	if err := doc.Decode(&bank); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	return bank.Questions, nil
}

func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Run validates every entry, then adds them through the catalog. An invalid
// entry rejects the whole bank before anything is written. A storage failure
// stops the load and returns how many entries were saved.
func Run(ctx context.Context, catalog question.Catalog, entries []Entry) (int, error) {
	log := config.WithContext(ctx)

	for i, e := range entries {
		if err := question.Validate(e.toQuestion()); err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	for i, e := range entries {
		if _, err := catalog.AddQuestion(ctx, e.toQuestion()); err != nil {
			return i, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	log.WithField("count", len(entries)).Info("Question bank seeded")
	return len(entries), nil
}

func (e Entry) toQuestion() *question.Question {
	return &question.Question{
		Category:      e.Category,
		QuestionTitle: e.QuestionTitle,
		Option1:       e.Option1,
		Option2:       e.Option2,
		Option3:       e.Option3,
		Option4:       e.Option4,
		RightAnswer:   e.RightAnswer,
	}
}
