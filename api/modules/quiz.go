package modules

import (
	"wrstats/api/handlers"
	quizservice "wrstats/api/services/quiz"
	webappservice "wrstats/api/services/webapp"
)

func initializeQuizHandler(deps *ModuleDependencies) *handlers.QuizHandler {
	quizCfg := deps.Config.Quiz

	quizService := quizservice.NewQuizService(&quizservice.QuizServiceDeps{
		DB:          deps.DB,
		QuizKey:     quizCfg.Key,
		MaxAttempts: quizCfg.MaxAttempts,
		RewardURL:   quizCfg.RewardURL,
	})

	return handlers.NewQuizHandler(&handlers.QuizHandlerDependencies{
		QuizService: quizService,
		BotToken:    quizCfg.BotToken,
	})
}

func initializeWebappHandler(deps *ModuleDependencies) *handlers.WebappHandler {
	webappService := webappservice.NewWebappService(&webappservice.WebappServiceDeps{
		DB: deps.DB,
	})

	return handlers.NewWebappHandler(&handlers.WebappHandlerDependencies{
		WebappService: webappService,
	})
}
