package config

// Layout constants.
const (
	// InputWidth is the visible width of each duration field.
	InputWidth = 4

	// InputCharLimit caps the characters accepted per duration field.
	InputCharLimit = 6

	// ProgressWidth is the preferred width of the countdown bar.
	ProgressWidth = 40

	// MinProgressWidth is the narrowest countdown bar we render.
	MinProgressWidth = 10

	// ActivityIndent is the left padding of activity lines.
	ActivityIndent = 2
)

// Display text.
const (
	PromptText       = "Enter duration (hh:mm:ss):"
	RemainingPrefix  = "Time remaining: "
	TimesUpText      = "Time's up!"
	InvalidInputText = "Invalid input! Enter numbers."

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
