package agent

import "github.com/veridex/veridex/internal/classifier"

// bootstrapTexts is the fixed labeled training set the classifier is fit on
// at process start.
var bootstrapTexts = []string{
	"Apple announces new iPhone with advanced features",
	"Saudi Arabia launches green initiative",
	"Oil prices drop significantly due to market changes",
	"Shocking: Eating dirt cures all diseases instantly",
	"Aliens confirmed to be living in New York sewers",
	"Government admits earth is flat in leaked documents",
	"Breaking: Water found on Mars by NASA",
	"Scientists confirm climate change is accelerating",
	"Free money given away by billionaire today click here",
	"Secret magical pill makes you fly instantly",
}

var bootstrapLabels = []string{
	classifier.LabelReal,
	classifier.LabelReal,
	classifier.LabelReal,
	classifier.LabelFake,
	classifier.LabelFake,
	classifier.LabelFake,
	classifier.LabelReal,
	classifier.LabelReal,
	classifier.LabelFake,
	classifier.LabelFake,
}

// BootstrapSet returns copies of the bootstrap training texts and labels
func BootstrapSet() ([]string, []string) {
	texts := make([]string, len(bootstrapTexts))
	copy(texts, bootstrapTexts)
	labels := make([]string, len(bootstrapLabels))
	copy(labels, bootstrapLabels)
	return texts, labels
}
