package services

import "errors"

// Ошибки движка турнира. Все они recoverable: состояние при отказе не меняется.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Ввод результата
	ErrInvalidScore          = errors.New("invalid score: both scores must be present non-negative integers")
	ErrTiedScore             = errors.New("scores cannot be equal: a match needs a winner")
	ErrMatchAlreadyCompleted = errors.New("match is already completed")
	ErrMatchNotFound         = errors.New("match not found")

	// Переходы между фазами
	ErrInsufficientCompetitors = errors.New("not enough distinct competitors to seed the playoffs")
	ErrPhasePreconditionNotMet = errors.New("phase precondition not met")
	ErrTournamentIncomplete    = errors.New("tournament has no champion yet")

	// Аутентификация организатора
	ErrInvalidCredentials = errors.New("invalid organizer credentials")

	// Публикация отчёта
	ErrReportPublishingDisabled = errors.New("report publishing is not configured")
)
