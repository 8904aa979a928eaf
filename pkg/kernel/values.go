package kernel

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

type JobTitle string

type Company string

type Location string

type JobDescription string

type JobScope string

type Tag string

type CoverLetter string
