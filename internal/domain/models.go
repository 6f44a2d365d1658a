package domain

// WeatherSnapshot holds the current conditions for one location at one observation time
type WeatherSnapshot struct {
	Name    string
	Region  string
	Country string

	LastUpdated   string // as delivered by the source, e.g. "2024-11-30 14:15"
	ConditionText string
	ConditionIcon string // absolute https URL

	TempC      float64
	FeelsLikeC float64
	VisKm      float64
	Humidity   float64
	WindKph    float64
	WindDir    string
	PressureMb float64
	UV         float64
	Cloud      float64
	PrecipMm   float64
	DewPointC  float64
}

// Phase is the presentational mode of a search interaction
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ErrorKind classifies a failed search for logging
type ErrorKind int

const (
	ErrorKindNone ErrorKind = iota
	ErrorKindEmptyQuery
	ErrorKindNetwork
	ErrorKindMalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNone:
		return "none"
	case ErrorKindEmptyQuery:
		return "empty_query"
	case ErrorKindNetwork:
		return "network_error"
	case ErrorKindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// User-facing messages. Network and malformed-response failures share one text.
const (
	MessageEmptyQuery  = "Please enter a location to search for weather data."
	MessageFetchFailed = "Failed to fetch weather data. Please check the location and try again."
)

// InteractionState is exactly one of Idle, Loading, Success or Failure.
// Snapshot is only meaningful in PhaseSuccess; Message and Kind only in PhaseFailure.
type InteractionState struct {
	Phase    Phase
	Query    string
	Snapshot WeatherSnapshot
	Message  string
	Kind     ErrorKind
}

// Idle returns the initial state
func Idle() InteractionState {
	return InteractionState{Phase: PhaseIdle}
}

// Loading returns the state for an outstanding request
func Loading(query string) InteractionState {
	return InteractionState{Phase: PhaseLoading, Query: query}
}

// Success returns the state for a completed request
func Success(query string, snapshot WeatherSnapshot) InteractionState {
	return InteractionState{Phase: PhaseSuccess, Query: query, Snapshot: snapshot}
}

// Failure returns the state for a rejected or failed request
func Failure(query string, kind ErrorKind, message string) InteractionState {
	return InteractionState{Phase: PhaseFailure, Query: query, Kind: kind, Message: message}
}

// LoadingVisible reports whether the loading indicator is shown
func (s InteractionState) LoadingVisible() bool { return s.Phase == PhaseLoading }

// ResultVisible reports whether the result panel is shown
func (s InteractionState) ResultVisible() bool { return s.Phase == PhaseSuccess }

// ErrorVisible reports whether the error panel is shown
func (s InteractionState) ErrorVisible() bool { return s.Phase == PhaseFailure }
