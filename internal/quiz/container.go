package quiz

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(repo QuizRepository, sampler QuestionSampler) *QuizContainer {
	service := NewService(repo, sampler)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
