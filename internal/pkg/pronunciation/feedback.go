package pronunciation

// EmptyAttemptFeedback is returned when either side of an attempt has no words.
const EmptyAttemptFeedback = "We could not evaluate this attempt: both the target phrase and the spoken response are required."

type feedbackBand struct {
	min     int
	message string
}

// Ordered from the highest band down; the first band whose min is met wins.
var feedbackLadder = []feedbackBand{
	{90, "Excellent! Your pronunciation is clear and accurate."},
	{75, "Great job! Just a few small details to polish."},
	{60, "Good effort. Focus on the highlighted words and try again."},
	{40, "Keep practicing. Slow down and say each word clearly."},
	{0, "This needs major work. Listen to the phrase again and repeat it word by word."},
}

// FeedbackFor returns the single feedback message for an overall score.
func FeedbackFor(overall int) string {
	for _, b := range feedbackLadder {
		if overall >= b.min {
			return b.message
		}
	}
	return feedbackLadder[len(feedbackLadder)-1].message
}
