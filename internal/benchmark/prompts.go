// internal/benchmark/prompts.go
package benchmark

// DefaultPrompts is the built-in workload used when no prompts are configured.
// The set spans short analysis, creative writing, long-form reasoning, code
// generation, and structured output, so one pass exercises varied prompt and
// completion lengths.
var DefaultPrompts = []string{
	"Explain the process of photosynthesis in plants, including the key chemical reactions and energy transformations involved.",

	"Write a detailed story about a time traveler who visits three different historical periods. Include specific details about each era and the protagonist's interactions.",

	"Analyze the potential impact of artificial intelligence on global employment over the next decade. Consider various industries, economic factors, and potential mitigation strategies. Provide specific examples and data-driven reasoning.",

	"Write a Python function that implements a binary search tree with methods for insertion, deletion, and traversal. Include comments explaining the time complexity of each operation.",

	"Create a detailed business plan for a renewable energy startup. Include sections on market analysis, financial projections, competitive advantages, and risk assessment. Format the response with clear headings and bullet points.",
}
