package domain

var (
	PRONUNCIATION_EVALUATE_SUCCESS = "Pronunciation evaluated"
	PRONUNCIATION_EVALUATE_FAILED  = "Failed to evaluate pronunciation"
	ACTIVITY_RECORD_SUCCESS        = "Activity recorded"
	ACTIVITY_RECORD_FAILED         = "Failed to record activity"
	WORDBOOK_UPDATE_SUCCESS        = "Wordbook updated"
	WORDBOOK_UPDATE_FAILED         = "Failed to update wordbook"
	PROFICIENCY_ASSESS_SUCCESS     = "Proficiency assessed"
	PROFICIENCY_ASSESS_FAILED      = "Failed to assess proficiency"
	PROFICIENCY_RECOMMEND_SUCCESS  = "Upgrade recommendation generated"
	PROFICIENCY_RECOMMEND_FAILED   = "Failed to generate upgrade recommendation"
	PROFICIENCY_LEARNER_SUCCESS    = "Learner proficiency loaded"
	PROFICIENCY_LEARNER_FAILED     = "Failed to load learner proficiency"
)
