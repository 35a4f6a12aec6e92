package ports

// Reporter prints human-readable progress for an operator watching the run.
type Reporter interface {
	Rule()
	Title(text string)
	Stage(text string)
	Success(text string)
	Failure(text string)
}
