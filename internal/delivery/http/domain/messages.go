package domain

var (
	ATTEMPT_SUBMIT_SUCCESS = "Attempt recorded"
	ATTEMPT_SUBMIT_FAILED  = "Failed to record attempt"
	ATTEMPT_LIST_SUCCESS   = "Attempt history retrieved"
	ATTEMPT_LIST_FAILED    = "Failed to retrieve attempt history"

	ANALYSIS_GET_SUCCESS = "Analysis generated"
	ANALYSIS_GET_FAILED  = "Failed to generate analysis"

	ASSIGNMENT_PREVIEW_SUCCESS = "Assignment preview computed"
	ASSIGNMENT_PREVIEW_FAILED  = "Failed to compute assignment preview"
	ASSIGNMENT_START_SUCCESS   = "Assignment questions selected"
	ASSIGNMENT_START_FAILED    = "Failed to select assignment questions"

	ADVISOR_REPORT_SUCCESS  = "Report generated"
	ADVISOR_REPORT_FAILED   = "Failed to generate report"
	ADVISOR_CHAT_SUCCESS    = "Advisor replied"
	ADVISOR_CHAT_FAILED     = "Failed to reach the advisor"
	ADVISOR_HISTORY_SUCCESS = "Chat history retrieved"
	ADVISOR_HISTORY_FAILED  = "Failed to retrieve chat history"
)
