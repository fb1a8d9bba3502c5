package profanity

import (
	goaway "github.com/TwiN/go-away"
)

// extraWords are Filipino insults the chat room sees often; the default dictionary is English only.
var extraWords = []string{
	"gago", "tanga", "ulol", "putangina", "pakshet", "lintik", "buwisit", "leche", "tarantado",
	"bobo", "hayok", "ibak", "jerk", "peste", "yawa", "siraulo", "tanginamo",
	"pakyu", "tangina", "unggoy", "puto", "bastos", "balimbing", "anakngputa",
	"hayup", "kalapatingbarado",
}

type Filter struct {
	detector *goaway.ProfanityDetector
}

func New(words ...string) *Filter {
	dictionary := make([]string, 0, len(goaway.DefaultProfanities)+len(extraWords)+len(words))
	dictionary = append(dictionary, goaway.DefaultProfanities...)
	dictionary = append(dictionary, extraWords...)
	dictionary = append(dictionary, words...)

	detector := goaway.NewProfanityDetector().
		WithCustomDictionary(dictionary, goaway.DefaultFalsePositives, goaway.DefaultFalseNegatives)

	return &Filter{detector: detector}
}

func (f *Filter) IsProfane(text string) bool {
	return f.detector.IsProfane(text)
}

func (f *Filter) Censor(text string) string {
	return f.detector.Censor(text)
}
