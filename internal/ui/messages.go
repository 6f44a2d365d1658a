package ui

import "weathergrip/internal/search"

// searchResultMsg carries the data source answer for an issued request
type searchResultMsg struct {
	result search.Result
}

// submitMsg asks the model to run a search for text, as if it had been typed
type submitMsg struct {
	text string
}

// reportPagerMsg contains the result of a report pager command
type reportPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
