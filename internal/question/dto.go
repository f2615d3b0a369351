package question

type CreateQuestionDTO struct {
	Category      string `json:"category" example:"Java"`
	QuestionTitle string `json:"question_title" example:"Which keyword declares a constant?"`
	Option1       string `json:"option1" example:"var"`
	Option2       string `json:"option2" example:"final"`
	Option3       string `json:"option3" example:"static"`
	Option4       string `json:"option4" example:"const"`
	RightAnswer   string `json:"right_answer" example:"final"`
}

func (d CreateQuestionDTO) toEntity() *Question {
	return &Question{
		Category:      d.Category,
		QuestionTitle: d.QuestionTitle,
		Option1:       d.Option1,
		Option2:       d.Option2,
		Option3:       d.Option3,
		Option4:       d.Option4,
		RightAnswer:   d.RightAnswer,
	}
}
