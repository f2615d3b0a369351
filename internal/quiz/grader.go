package quiz

import (
	"context"

	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

// Grader scores a response sequence against a quiz by position.
type Grader struct {
	repo QuizRepository
}

func NewGrader(repo QuizRepository) *Grader {
	return &Grader{repo: repo}
}

func (g *Grader) CalculateResult(ctx context.Context, id string, responses []Response) (int, error) {
	log := config.WithContext(ctx)

	quizID, err := parseID(id)
	if err != nil {
		log.WithError(err).Warn("Envio de quiz rejeitado")
		return 0, err
	}
	if len(responses) == 0 {
		log.WithField("quiz_id", quizID).Warn("Envio de quiz sem respostas rejeitado")
		return 0, apperror.Validation("responses required")
	}

	quiz, err := loadQuiz(ctx, g.repo, quizID)
	if err != nil {
		return 0, err
	}

	if len(responses) != len(quiz.Items) {
		log.WithFields(logrus.Fields{
			"quiz_id":   quizID,
			"responses": len(responses),
			"questions": len(quiz.Items),
		}).Warn("Número de respostas diferente do quiz")
		return 0, apperror.Validation("response/question count mismatch")
	}

	score := Score(quiz, responses)

	log.WithFields(logrus.Fields{
		"quiz_id": quizID,
		"score":   score,
	}).Info("Quiz corrigido com sucesso")
	return score, nil
}

// Score counts the positions where the response equals the right answer
// exactly. Nil responses never match. Callers ensure equal lengths.
func Score(quiz *Quiz, responses []Response) int {
	right := 0
	for i, item := range quiz.Items {
		if i >= len(responses) {
			break
		}
		r := responses[i].Response
		if r != nil && *r == item.Question.RightAnswer {
			right++
		}
	}
	return right
}
