package feedback

import "math"

// Round1 rounds to one decimal for display. Stored scores stay raw integers.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SubmissionMean is the arithmetic mean of the five dimension scores of one
// submission, unrounded.
func SubmissionMean(fb PeerFeedback) float64 {
	sum := fb.TechnicalSkills + fb.Communication + fb.Teamwork + fb.ProblemSolving + fb.Leadership
	return float64(sum) / 5
}

// SubmissionAverage is the display value for a single submission.
func SubmissionAverage(fb PeerFeedback) float64 {
	return Round1(SubmissionMean(fb))
}

// CrossReviewerAverage is the mean of each reviewer's five-dimension mean,
// not a flattened mean of all individual scores. Returns false when there
// are no submissions.
func CrossReviewerAverage(fbs []PeerFeedback) (float64, bool) {
	if len(fbs) == 0 {
		return 0, false
	}
	var sum float64
	for _, fb := range fbs {
		sum += SubmissionMean(fb)
	}
	return Round1(sum / float64(len(fbs))), true
}
