package documents

import (
	"strconv"
	"strings"
)

// Sample is a built-in text offered by "load sample text"
type Sample struct {
	Title string
	Text  string
}

// Samples lists the built-in texts. The first one is the default.
var Samples = []Sample{
	{
		Title: "The Science of Learning",
		Text: "Learning is a complex process that involves the formation of new neural pathways in the brain. " +
			"When we encounter new information, our neurons create connections that allow us to store and retrieve memories. " +
			"This process, known as neuroplasticity, demonstrates the brain's remarkable ability to adapt and reorganize throughout our lives. " +
			"Research has shown that active engagement with material, spaced repetition, and connecting new information to existing knowledge significantly enhance learning outcomes.",
	},
	{
		Title: "Climate Change Impact",
		Text: "Climate change represents one of the most pressing challenges of our time. " +
			"Rising global temperatures have led to melting ice caps, rising sea levels, and increasingly frequent extreme weather events. " +
			"Scientists have observed that carbon dioxide levels in the atmosphere have increased by over 40% since pre-industrial times, " +
			"primarily due to human activities such as burning fossil fuels and deforestation. " +
			"The consequences of these changes affect ecosystems, agriculture, and human communities worldwide.",
	},
	{
		Title: "Artificial Intelligence",
		Text: "Artificial intelligence has evolved from science fiction to everyday reality. " +
			"Modern AI systems can process vast amounts of data, recognize patterns, and make decisions with remarkable accuracy. " +
			"Machine learning algorithms enable computers to improve their performance through experience, " +
			"while neural networks mimic the structure of the human brain to solve complex problems. " +
			"From virtual assistants to autonomous vehicles, AI technology continues to transform how we work, communicate, and live.",
	},
}

// FindSample looks a sample up by zero-based index or by title, ignoring case.
// An empty name selects the first sample.
func FindSample(name string) (Sample, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Samples[0], true
	}
	if i, err := strconv.Atoi(name); err == nil {
		if i < 0 || i >= len(Samples) {
			return Sample{}, false
		}
		return Samples[i], true
	}
	for _, s := range Samples {
		if strings.EqualFold(s.Title, name) {
			return s, true
		}
	}
	return Sample{}, false
}
