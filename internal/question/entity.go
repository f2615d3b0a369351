package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Category      string    `gorm:"type:text;not null;index" json:"category"`
	QuestionTitle string    `gorm:"type:text;not null" json:"question_title"`
	Option1       string    `gorm:"type:text;not null" json:"option1"`
	Option2       string    `gorm:"type:text;not null" json:"option2"`
	Option3       string    `gorm:"type:text;not null" json:"option3"`
	Option4       string    `gorm:"type:text;not null" json:"option4"`
	RightAnswer   string    `gorm:"type:text;not null" json:"right_answer"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

func (q *Question) Options() [4]string {
	return [4]string{q.Option1, q.Option2, q.Option3, q.Option4}
}

// View is the client-facing projection of a Question without its right answer.
type View struct {
	ID            uuid.UUID `json:"id"`
	QuestionTitle string    `json:"question_title"`
	Option1       string    `json:"option1"`
	Option2       string    `json:"option2"`
	Option3       string    `json:"option3"`
	Option4       string    `json:"option4"`
}

func (q *Question) View() View {
	return View{
		ID:            q.ID,
		QuestionTitle: q.QuestionTitle,
		Option1:       q.Option1,
		Option2:       q.Option2,
		Option3:       q.Option3,
		Option4:       q.Option4,
	}
}
