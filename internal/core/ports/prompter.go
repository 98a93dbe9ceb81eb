package ports

// Prompter asks the user yes/no questions.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Confirm asks the question and reports the answer. Non-interactive
	// sessions decline without blocking.
	Confirm(question string) (bool, error)
}
